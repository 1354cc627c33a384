package redis

// Key layout. Each subscription is a JSON document at its own key; a set
// holds the IDs of all subscriptions so listing does not need SCAN.
const (
	subKeyPrefix = "herald:hook:"
	subIndexKey  = "herald:hooks"
)

func subKey(id string) string {
	return subKeyPrefix + id
}
