package audit

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	event := AuthenticateEvent{
		Action:   ActionLogin,
		Username: "alice",
		UserID:   42,
		ClientIP: "192.168.1.1",
		Success:  true,
	}

	logger.Log(event)

	output := buf.String()

	// Check RFC5424 format components
	if !strings.HasPrefix(output, "<") {
		t.Error("Expected PRI field at start of output")
	}
	if !strings.Contains(output, "satchel") {
		t.Error("Expected app name 'satchel' in output")
	}
	if !strings.Contains(output, "login") {
		t.Error("Expected message ID 'login' in output")
	}
	if !strings.Contains(output, "alice") {
		t.Error("Expected username in output")
	}
	if !strings.Contains(output, "192.168.1.1") {
		t.Error("Expected client IP in output")
	}
	if !strings.Contains(output, "successfully completed login") {
		t.Error("Expected success message in output")
	}
}

func TestAuthenticateEvent(t *testing.T) {
	tests := []struct {
		name      string
		event     AuthenticateEvent
		wantMsg   string
		wantSev   Severity
		wantFac   int
		wantMsgID string
	}{
		{
			name: "successful login",
			event: AuthenticateEvent{
				Action:   ActionLogin,
				Username: "alice",
				ClientIP: "10.0.0.1",
				Success:  true,
			},
			wantMsg:   "successfully completed login",
			wantSev:   SeverityInfo,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "login",
		},
		{
			name: "failed login",
			event: AuthenticateEvent{
				Action:       ActionLogin,
				Username:     "alice",
				ClientIP:     "10.0.0.1",
				Success:      false,
				ErrorMessage: "invalid credentials",
			},
			wantMsg:   "failed login: invalid credentials",
			wantSev:   SeverityWarning,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "login",
		},
		{
			name: "refresh without username",
			event: AuthenticateEvent{
				Action:  ActionRefresh,
				UserID:  7,
				Success: true,
			},
			wantMsg:   "user 7 successfully completed refresh",
			wantSev:   SeverityInfo,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "refresh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.Severity() != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", tt.event.Severity(), tt.wantSev)
			}
			if tt.event.Facility() != tt.wantFac {
				t.Errorf("Facility() = %v, want %v", tt.event.Facility(), tt.wantFac)
			}
			if tt.event.MessageID() != tt.wantMsgID {
				t.Errorf("MessageID() = %v, want %v", tt.event.MessageID(), tt.wantMsgID)
			}
		})
	}
}

func TestInventoryEvent(t *testing.T) {
	tests := []struct {
		name      string
		event     InventoryEvent
		wantMsg   string
		wantSev   Severity
		wantMsgID string
	}{
		{
			name: "successful add",
			event: InventoryEvent{
				Action:   ActionAdd,
				UserID:   3,
				ItemName: "Sword",
				Success:  true,
			},
			wantMsg:   `user 3 performed add on item "Sword"`,
			wantSev:   SeverityInfo,
			wantMsgID: "inventory-add",
		},
		{
			name: "failed batch",
			event: InventoryEvent{
				Action:       ActionBatch,
				UserID:       3,
				ItemCount:    2,
				Success:      false,
				ErrorMessage: "item name must not be empty",
			},
			wantMsg:   "user 3 failed batch on 2 items: item name must not be empty",
			wantSev:   SeverityWarning,
			wantMsgID: "inventory-batch",
		},
		{
			name: "successful subtract",
			event: InventoryEvent{
				Action:  ActionSubtract,
				UserID:  9,
				Success: true,
			},
			wantMsg:   "user 9 performed subtract",
			wantSev:   SeverityInfo,
			wantMsgID: "inventory-subtract",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.Severity() != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", tt.event.Severity(), tt.wantSev)
			}
			if tt.event.MessageID() != tt.wantMsgID {
				t.Errorf("MessageID() = %v, want %v", tt.event.MessageID(), tt.wantMsgID)
			}
		})
	}
}

func TestStructuredData(t *testing.T) {
	event := AuthenticateEvent{
		Action:   ActionLogin,
		Username: "bob",
		UserID:   11,
		ClientIP: "172.16.0.5",
		Success:  false,
	}

	sd := event.StructuredData()

	if sd[SDIDAuth]["user"] != "bob" {
		t.Errorf("auth user = %q, want %q", sd[SDIDAuth]["user"], "bob")
	}
	if sd[SDIDAuth]["user_id"] != "11" {
		t.Errorf("auth user_id = %q, want %q", sd[SDIDAuth]["user_id"], "11")
	}
	if sd[SDIDClient]["ip"] != "172.16.0.5" {
		t.Errorf("client ip = %q, want %q", sd[SDIDClient]["ip"], "172.16.0.5")
	}
	if sd[SDIDAction]["result"] != "failure" {
		t.Errorf("action result = %q, want %q", sd[SDIDAction]["result"], "failure")
	}
}

func TestEscapeSDValue(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`plain`, `"plain"`},
		{`has"quote`, `"has\"quote"`},
		{`has]bracket`, `"has\]bracket"`},
		{`has\backslash`, `"has\\backslash"`},
	}

	for _, tt := range tests {
		if got := escapeSDValue(tt.input); got != tt.expected {
			t.Errorf("escapeSDValue(%q) = %s, want %s", tt.input, got, tt.expected)
		}
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionRegister, "register"},
		{ActionLogin, "login"},
		{ActionRefresh, "refresh"},
		{ActionAdd, "add"},
		{ActionBatch, "batch"},
		{ActionSubtract, "subtract"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}
