package catalog

// Builtin returns the entries recognized out of the box. The set covers the
// host application's security, order, invoice, and support ticket events.
func Builtin() []Entry {
	return []Entry{
		// Security
		{
			Name:        "onEventClientLoginFailed",
			Label:       "Client Login Failed",
			Description: "A client attempted to login with invalid credentials",
			Severity:    SeverityWarning,
		},
		{
			Name:        "onEventAdminLoginFailed",
			Label:       "Admin Login Failed",
			Description: "An administrator attempted to login with invalid credentials",
			Severity:    SeverityError,
		},
		{
			Name:        "onAfterClientSignUp",
			Label:       "New Client Signup",
			Description: "A new client has registered",
			Severity:    SeveritySuccess,
		},

		// Orders
		{
			Name:        "onAfterAdminOrderCreate",
			Label:       "Order Created (Admin)",
			Description: "An order was created by an admin",
			Severity:    SeverityInfo,
		},
		{
			Name:        "onAfterClientOrderCreate",
			Label:       "Order Created (Client)",
			Description: "An order was created by a client",
			Severity:    SeverityInfo,
		},
		{
			Name:        "onAfterAdminOrderSuspend",
			Label:       "Order Suspended",
			Description: "An order was suspended",
			Severity:    SeverityWarning,
		},
		{
			Name:        "onAfterAdminOrderCancel",
			Label:       "Order Cancelled",
			Description: "An order was cancelled",
			Severity:    SeverityError,
		},

		// Invoices
		{
			Name:        "onAfterAdminInvoiceApprove",
			Label:       "Invoice Approved",
			Description: "An invoice was approved",
			Severity:    SeveritySuccess,
		},
		{
			Name:        "onAfterAdminInvoiceRefund",
			Label:       "Invoice Refunded",
			Description: "An invoice was refunded",
			Severity:    SeverityWarning,
		},
		{
			Name:        "onAfterAdminTransactionCreate",
			Label:       "Transaction Created",
			Description: "A new transaction was recorded",
			Severity:    SeverityInfo,
		},

		// Tickets
		{
			Name:        "onAfterClientOpenTicket",
			Label:       "New Ticket Opened",
			Description: "A client opened a new support ticket",
			Severity:    SeverityInfo,
		},
		{
			Name:        "onAfterAdminReplyTicket",
			Label:       "Ticket Replied (Admin)",
			Description: "An administrator replied to a ticket",
			Severity:    SeverityNeutral,
		},
		{
			Name:        "onAfterClientReplyTicket",
			Label:       "Ticket Replied (Client)",
			Description: "A client replied to a ticket",
			Severity:    SeverityNeutral,
		},
	}
}
