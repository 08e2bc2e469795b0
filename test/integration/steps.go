package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cucumber/godog"
)

// userSession holds the credentials issued to one user during a scenario
type userSession struct {
	userID       int64
	accessToken  string
	refreshToken string
}

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	response     *http.Response
	responseBody []byte

	sessions map[string]*userSession
	current  string

	// item name -> itemId, collected from add responses
	items map[string]string
	// latest inventory snapshot for the current user
	snapshot []inventoryEntry
}

type inventoryEntry struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:       tc,
		sessions: make(map[string]*userSession),
		items:    make(map[string]string),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Step(`^a Satchel server is running$`, s.aSatchelServerIsRunning)

	sc.Step(`^I register the user "([^"]*)" with password "([^"]*)"$`, s.iRegisterUser)
	sc.Step(`^a user "([^"]*)" exists with password "([^"]*)"$`, s.aUserExists)
	sc.Step(`^I authenticate as "([^"]*)" with password "([^"]*)"$`, s.iAuthenticate)
	sc.Step(`^I am authenticated as "([^"]*)" with password "([^"]*)"$`, s.iAmAuthenticated)
	sc.Step(`^I refresh my access token$`, s.iRefreshMyAccessToken)
	sc.Step(`^I should receive a working access token$`, s.iShouldReceiveAWorkingAccessToken)

	sc.Step(`^I add the item "([^"]*)" to my inventory$`, s.iAddItem)
	sc.Step(`^I add the item "([^"]*)" to my inventory (\d+) times$`, s.iAddItemTimes)
	sc.Step(`^I batch add the items:$`, s.iBatchAddItems)
	sc.Step(`^I subtract (\d+) of the item "([^"]*)"$`, s.iSubtractItem)
	sc.Step(`^I list my inventory$`, s.iListInventory)

	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response should contain "([^"]*)"$`, s.theResponseShouldContain)
	sc.Step(`^my inventory should show (\d+) of "([^"]*)"$`, s.myInventoryShouldShow)
	sc.Step(`^my inventory should not contain "([^"]*)"$`, s.myInventoryShouldNotContain)
	sc.Step(`^only one catalog entry should exist for "([^"]*)"$`, s.onlyOneCatalogEntry)
}

func (s *StepsContext) aSatchelServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

// HTTP helpers

func (s *StepsContext) do(method, path string, body interface{}, authed bool) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, s.tc.ServerURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		session, ok := s.sessions[s.current]
		if !ok {
			return fmt.Errorf("no session for user %q", s.current)
		}
		req.Header.Set("Authorization", "Bearer "+session.accessToken)
	}

	resp, err := s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	s.response = resp
	s.responseBody, err = io.ReadAll(resp.Body)
	return err
}

// Authentication steps

func (s *StepsContext) iRegisterUser(username, password string) error {
	return s.do("POST", "/user/create", map[string]string{
		"firstName": username,
		"lastName":  "Tester",
		"username":  username,
		"password":  password,
	}, false)
}

func (s *StepsContext) aUserExists(username, password string) error {
	if err := s.iRegisterUser(username, password); err != nil {
		return err
	}
	// A conflict means the user carried over from an earlier scenario
	if s.response.StatusCode != http.StatusOK && s.response.StatusCode != http.StatusConflict {
		return fmt.Errorf("failed to create user %q: status %d, body %s",
			username, s.response.StatusCode, s.responseBody)
	}
	return nil
}

func (s *StepsContext) iAuthenticate(username, password string) error {
	if err := s.do("POST", "/user/authenticate", map[string]string{
		"username": username,
		"password": password,
	}, false); err != nil {
		return err
	}

	if s.response.StatusCode == http.StatusOK {
		var resp struct {
			UserID       int64  `json:"userId"`
			AccessToken  string `json:"accessToken"`
			RefreshToken string `json:"refreshToken"`
		}
		if err := json.Unmarshal(s.responseBody, &resp); err != nil {
			return err
		}
		s.sessions[username] = &userSession{
			userID:       resp.UserID,
			accessToken:  resp.AccessToken,
			refreshToken: resp.RefreshToken,
		}
		s.current = username
	}
	return nil
}

func (s *StepsContext) iAmAuthenticated(username, password string) error {
	if err := s.iAuthenticate(username, password); err != nil {
		return err
	}
	if s.response.StatusCode != http.StatusOK {
		return fmt.Errorf("authentication for %q failed: status %d, body %s",
			username, s.response.StatusCode, s.responseBody)
	}
	return nil
}

func (s *StepsContext) iRefreshMyAccessToken() error {
	session, ok := s.sessions[s.current]
	if !ok {
		return fmt.Errorf("no session for user %q", s.current)
	}

	path := fmt.Sprintf("/user/refresh?userId=%d&refreshToken=%s",
		session.userID, url.QueryEscape(session.refreshToken))
	if err := s.do("GET", path, nil, false); err != nil {
		return err
	}

	if s.response.StatusCode == http.StatusOK {
		var resp struct {
			AccessToken string `json:"accessToken"`
		}
		if err := json.Unmarshal(s.responseBody, &resp); err != nil {
			return err
		}
		session.accessToken = resp.AccessToken
	}
	return nil
}

func (s *StepsContext) iShouldReceiveAWorkingAccessToken() error {
	session, ok := s.sessions[s.current]
	if !ok {
		return fmt.Errorf("no session for user %q", s.current)
	}

	claims, err := s.tc.Minter.Parse(session.accessToken)
	if err != nil {
		return fmt.Errorf("access token does not verify: %w", err)
	}
	if claims.UserID != session.userID {
		return fmt.Errorf("token user id = %d, want %d", claims.UserID, session.userID)
	}

	// The token must also be accepted by the server
	if err := s.do("GET", "/whoami", nil, true); err != nil {
		return err
	}
	if s.response.StatusCode != http.StatusOK {
		return fmt.Errorf("whoami with fresh token: status %d", s.response.StatusCode)
	}
	return nil
}

// Inventory steps

func (s *StepsContext) iAddItem(name string) error {
	if err := s.do("POST", "/inventory/item", map[string]string{"name": name}, true); err != nil {
		return err
	}

	if s.response.StatusCode == http.StatusOK {
		var resp struct {
			ItemID string `json:"itemId"`
			Name   string `json:"name"`
		}
		if err := json.Unmarshal(s.responseBody, &resp); err != nil {
			return err
		}
		s.items[resp.Name] = resp.ItemID
	}
	return nil
}

func (s *StepsContext) iAddItemTimes(name string, count int) error {
	for i := 0; i < count; i++ {
		if err := s.iAddItem(name); err != nil {
			return err
		}
		if s.response.StatusCode != http.StatusOK {
			return fmt.Errorf("add %d of %q: status %d", i+1, name, s.response.StatusCode)
		}
	}
	return nil
}

func (s *StepsContext) iBatchAddItems(table *godog.Table) error {
	var entries []map[string]string
	for i, row := range table.Rows {
		if i == 0 {
			continue // header
		}
		entry := map[string]string{"name": row.Cells[0].Value}
		if len(row.Cells) > 1 {
			entry["description"] = row.Cells[1].Value
		}
		entries = append(entries, entry)
	}
	return s.do("POST", "/inventory/items", entries, true)
}

func (s *StepsContext) iSubtractItem(amount int, name string) error {
	itemID, err := s.resolveItemID(name)
	if err != nil {
		return err
	}

	if err := s.do("DELETE", "/inventory/item", map[string]interface{}{
		"itemId":   itemID,
		"quantity": amount,
	}, true); err != nil {
		return err
	}

	if s.response.StatusCode == http.StatusOK {
		return json.Unmarshal(s.responseBody, &s.snapshot)
	}
	return nil
}

func (s *StepsContext) iListInventory() error {
	if err := s.do("GET", "/inventory/items", nil, true); err != nil {
		return err
	}

	s.snapshot = nil
	if s.response.StatusCode == http.StatusOK {
		return json.Unmarshal(s.responseBody, &s.snapshot)
	}
	return nil
}

// resolveItemID maps an item name to its catalog id, falling back to the
// database for items this scenario never saw in a response.
func (s *StepsContext) resolveItemID(name string) (string, error) {
	if id, ok := s.items[name]; ok {
		return id, nil
	}

	var id string
	err := s.tc.DB.Raw(`SELECT id FROM items WHERE name = ?`, name).Scan(&id).Error
	if err != nil || id == "" {
		return "", fmt.Errorf("unknown item %q", name)
	}
	s.items[name] = id
	return id, nil
}

// Assertion steps

func (s *StepsContext) theResponseStatusShouldBe(status int) error {
	if s.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if s.response.StatusCode != status {
		return fmt.Errorf("status = %d, want %d (body: %s)",
			s.response.StatusCode, status, s.responseBody)
	}
	return nil
}

func (s *StepsContext) theResponseShouldContain(substr string) error {
	if !bytes.Contains(s.responseBody, []byte(substr)) {
		return fmt.Errorf("response %q does not contain %q", s.responseBody, substr)
	}
	return nil
}

func (s *StepsContext) myInventoryShouldShow(quantity int, name string) error {
	if err := s.iListInventory(); err != nil {
		return err
	}

	itemID, err := s.resolveItemID(name)
	if err != nil {
		return err
	}

	for _, entry := range s.snapshot {
		if entry.ItemID == itemID {
			if entry.Quantity != quantity {
				return fmt.Errorf("quantity of %q = %d, want %d", name, entry.Quantity, quantity)
			}
			return nil
		}
	}
	return fmt.Errorf("item %q not present in inventory (want quantity %d)", name, quantity)
}

func (s *StepsContext) myInventoryShouldNotContain(name string) error {
	if err := s.iListInventory(); err != nil {
		return err
	}

	// An item that was never created anywhere cannot appear
	var id string
	if err := s.tc.DB.Raw(`SELECT id FROM items WHERE name = ?`, name).Scan(&id).Error; err != nil || id == "" {
		return nil
	}

	for _, entry := range s.snapshot {
		if entry.ItemID == id {
			return fmt.Errorf("item %q unexpectedly present with quantity %d", name, entry.Quantity)
		}
	}
	return nil
}

func (s *StepsContext) onlyOneCatalogEntry(name string) error {
	var count int64
	if err := s.tc.DB.Raw(`SELECT COUNT(*) FROM items WHERE name = ?`, name).Scan(&count).Error; err != nil {
		return err
	}
	if count != 1 {
		return fmt.Errorf("catalog entries for %q = %s, want 1", name, strconv.FormatInt(count, 10))
	}
	return nil
}
