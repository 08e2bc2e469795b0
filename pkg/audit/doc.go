// Package audit provides audit logging for security-relevant Satchel
// operations: registrations, login and refresh attempts, and inventory
// mutations.
//
// Events are written to stdout in RFC5424 syslog format so they can be
// shipped by any syslog-aware collector. Set SATCHEL_AUDIT_ENABLED=false
// to disable.
package audit
