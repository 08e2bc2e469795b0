package audit

import (
	"fmt"
	"strconv"
)

// AuthenticateEvent records a login or token refresh attempt.
type AuthenticateEvent struct {
	Action       Action // ActionLogin or ActionRefresh
	Username     string
	UserID       int64
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e AuthenticateEvent) MessageID() string {
	return e.Action.String()
}

func (e AuthenticateEvent) Message() string {
	subject := e.Username
	if subject == "" {
		subject = "user " + strconv.FormatInt(e.UserID, 10)
	}
	if e.Success {
		return fmt.Sprintf("%s successfully completed %s", subject, e.Action)
	}
	msg := fmt.Sprintf("%s failed %s", subject, e.Action)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e AuthenticateEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e AuthenticateEvent) Facility() int {
	return FacilityAuthPriv
}

func (e AuthenticateEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.Username,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Action.String(),
			"result":    result(e.Success),
		},
	}
	if e.UserID != 0 {
		sd[SDIDAuth]["user_id"] = strconv.FormatInt(e.UserID, 10)
	}
	return sd
}

// InventoryEvent records an inventory mutation.
type InventoryEvent struct {
	Action       Action // ActionAdd, ActionBatch or ActionSubtract
	UserID       int64
	ItemName     string
	ItemCount    int
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e InventoryEvent) MessageID() string {
	return "inventory-" + e.Action.String()
}

func (e InventoryEvent) Message() string {
	subject := fmt.Sprintf("user %d", e.UserID)
	var object string
	switch {
	case e.ItemName != "":
		object = fmt.Sprintf("item %q", e.ItemName)
	default:
		object = fmt.Sprintf("%d items", e.ItemCount)
	}
	if e.Success {
		return fmt.Sprintf("%s performed %s on %s", subject, e.Action, object)
	}
	msg := fmt.Sprintf("%s failed %s on %s", subject, e.Action, object)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e InventoryEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e InventoryEvent) Facility() int {
	return FacilityAuth
}

func (e InventoryEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user_id": strconv.FormatInt(e.UserID, 10),
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Action.String(),
			"result":    result(e.Success),
		},
	}
	if e.ItemName != "" {
		sd[SDIDSubject] = map[string]string{"item": e.ItemName}
	}
	return sd
}

func result(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
