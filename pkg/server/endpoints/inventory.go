package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/satchelhq/satchel/pkg/audit"
	"github.com/satchelhq/satchel/pkg/identity"
	"github.com/satchelhq/satchel/pkg/server"
	"github.com/satchelhq/satchel/pkg/server/middleware"
	"github.com/satchelhq/satchel/pkg/server/store"
)

// ItemResponse echoes a catalog entry back to the caller
type ItemResponse struct {
	ItemID      uuid.UUID `json:"itemId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

// SubtractRequest is the body of DELETE /inventory/item
type SubtractRequest struct {
	ItemID   uuid.UUID `json:"itemId"`
	Quantity int       `json:"quantity"`
}

// RegisterInventoryEndpoints registers the bearer-authenticated /inventory
// routes. Every operation is scoped to the identity resolved by the
// session middleware; a request without one is rejected before touching
// any store.
func RegisterInventoryEndpoints(s *server.Server) {
	session := middleware.NewSession(s.Minter, s.Users)

	inventoryRouter := s.Router.PathPrefix("/inventory").Subrouter()
	inventoryRouter.Use(session.Middleware)

	inventoryRouter.HandleFunc("/item", handleAddItem(s)).Methods("POST")
	inventoryRouter.HandleFunc("/items", handleAddItems(s)).Methods("POST")
	inventoryRouter.HandleFunc("/items", handleListInventory(s)).Methods("GET")
	inventoryRouter.HandleFunc("/item", handleSubtractItem(s)).Methods("DELETE")
}

// requireIdentity rejects the request when the session middleware attached
// no identity. Handlers must not fall through on a false return.
func requireIdentity(w http.ResponseWriter, r *http.Request) (*identity.Identity, bool) {
	id, ok := identity.Get(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	return id, true
}

func handleAddItem(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		var req store.ItemInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		item, err := s.Inventory.AddItem(r.Context(), id.UserID, req.Name, req.Description)
		if err != nil {
			audit.Log(audit.InventoryEvent{
				Action:       audit.ActionAdd,
				UserID:       id.UserID,
				ItemName:     req.Name,
				ClientIP:     getClientIP(r),
				ErrorMessage: err.Error(),
			})
			if errors.Is(err, store.ErrEmptyItemName) {
				respondWithError(w, http.StatusBadRequest, err.Error())
				return
			}
			respondWithError(w, http.StatusBadRequest, "inventory write failed")
			return
		}

		audit.Log(audit.InventoryEvent{
			Action:   audit.ActionAdd,
			UserID:   id.UserID,
			ItemName: item.Name,
			ClientIP: getClientIP(r),
			Success:  true,
		})
		respondWithJSON(w, http.StatusOK, ItemResponse{
			ItemID:      item.ID,
			Name:        item.Name,
			Description: item.Description,
		})
	}
}

func handleAddItems(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		var entries []store.ItemInput
		if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := s.Inventory.AddItems(r.Context(), id.UserID, entries); err != nil {
			audit.Log(audit.InventoryEvent{
				Action:       audit.ActionBatch,
				UserID:       id.UserID,
				ItemCount:    len(entries),
				ClientIP:     getClientIP(r),
				ErrorMessage: err.Error(),
			})
			// The whole batch has been rolled back at this point.
			respondWithError(w, http.StatusBadRequest, "batch add failed")
			return
		}

		audit.Log(audit.InventoryEvent{
			Action:    audit.ActionBatch,
			UserID:    id.UserID,
			ItemCount: len(entries),
			ClientIP:  getClientIP(r),
			Success:   true,
		})
		respondWithJSON(w, http.StatusOK, entries)
	}
}

func handleListInventory(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		entries, err := s.Inventory.UserInventory(r.Context(), id.UserID)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "inventory lookup failed")
			return
		}
		if len(entries) == 0 {
			respondWithError(w, http.StatusBadRequest, "inventory is empty")
			return
		}

		respondWithJSON(w, http.StatusOK, entries)
	}
}

func handleSubtractItem(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		var req SubtractRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		// A zero or negative amount would add stock through GREATEST(q - n, 0).
		if req.Quantity <= 0 {
			respondWithError(w, http.StatusBadRequest, "quantity must be positive")
			return
		}

		entries, err := s.Inventory.SubtractItem(r.Context(), id.UserID, req.ItemID, req.Quantity)
		if err != nil {
			audit.Log(audit.InventoryEvent{
				Action:       audit.ActionSubtract,
				UserID:       id.UserID,
				ClientIP:     getClientIP(r),
				ErrorMessage: err.Error(),
			})
			respondWithError(w, http.StatusBadRequest, "inventory write failed")
			return
		}
		if len(entries) == 0 {
			respondWithError(w, http.StatusBadRequest, "inventory is empty")
			return
		}

		audit.Log(audit.InventoryEvent{
			Action:   audit.ActionSubtract,
			UserID:   id.UserID,
			ClientIP: getClientIP(r),
			Success:  true,
		})
		respondWithJSON(w, http.StatusOK, entries)
	}
}
