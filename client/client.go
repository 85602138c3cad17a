// Package client is the Go SDK for the campsite API: a REST wrapper, a
// normalized in-memory store and a websocket sync loop keeping the store
// live across all connected clients.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"campsite/dto"
	"campsite/errors"
	"campsite/models"
)

// Client wraps the REST API. Token is set by Login/Signup and sent as a
// bearer token on every request.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// do sends a request and decodes the response into out (when non-nil).
// Non-2xx bodies of shape {"error": "..."} become *errors.AppError.
func (c *Client) do(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody struct {
			Error string `json:"error"`
		}
		message := fmt.Sprintf("unexpected status %d", resp.StatusCode)
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Error != "" {
			message = errBody.Error
		}
		return errors.NewAppError(resp.StatusCode, errors.ErrCodeValidation, message, nil)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Auth

func (c *Client) Signup(req dto.SignupRequest) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	if err := c.do(http.MethodPost, "/api/v1/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	c.Token = resp.Token
	return &resp, nil
}

func (c *Client) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	if err := c.do(http.MethodPost, "/api/v1/auth/login", req, &resp); err != nil {
		return nil, err
	}
	c.Token = resp.Token
	return &resp, nil
}

func (c *Client) Me() (*dto.EmployeeResponse, error) {
	var resp dto.EmployeeResponse
	if err := c.do(http.MethodGet, "/api/v1/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Camping places

func (c *Client) CampingPlaces() ([]models.CampingPlace, error) {
	var places []models.CampingPlace
	if err := c.do(http.MethodGet, "/api/v1/camping-places", nil, &places); err != nil {
		return nil, err
	}
	return places, nil
}

func (c *Client) CampingPlace(id uint) (*models.CampingPlace, error) {
	var place models.CampingPlace
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/v1/camping-places/%d", id), nil, &place); err != nil {
		return nil, err
	}
	return &place, nil
}

func (c *Client) CreateCampingPlace(req dto.CreateCampingPlaceRequest) (*models.CampingPlace, error) {
	var place models.CampingPlace
	if err := c.do(http.MethodPost, "/api/v1/camping-places", req, &place); err != nil {
		return nil, err
	}
	return &place, nil
}

func (c *Client) UpdateCampingPlace(id uint, req dto.UpdateCampingPlaceRequest) (*models.CampingPlace, error) {
	var place models.CampingPlace
	if err := c.do(http.MethodPatch, fmt.Sprintf("/api/v1/camping-places/%d", id), req, &place); err != nil {
		return nil, err
	}
	return &place, nil
}

func (c *Client) DeleteCampingPlace(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/v1/camping-places/%d", id), nil, nil)
}

// Camping items

func (c *Client) CampingItems() ([]models.CampingItem, error) {
	var items []models.CampingItem
	if err := c.do(http.MethodGet, "/api/v1/camping-items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CampingItem(id uint) (*models.CampingItem, error) {
	var item models.CampingItem
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/v1/camping-items/%d", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) CreateCampingItem(req dto.CreateCampingItemRequest) (*models.CampingItem, error) {
	var item models.CampingItem
	if err := c.do(http.MethodPost, "/api/v1/camping-items", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateCampingItem(id uint, req dto.UpdateCampingItemRequest) (*models.CampingItem, error) {
	var item models.CampingItem
	if err := c.do(http.MethodPatch, fmt.Sprintf("/api/v1/camping-items/%d", id), req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteCampingItem(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/v1/camping-items/%d", id), nil, nil)
}

// Bookings

func (c *Client) Bookings(filters map[string]string) ([]models.Booking, error) {
	path := "/api/v1/bookings"
	if len(filters) > 0 {
		query := make([]string, 0, len(filters))
		for k, v := range filters {
			query = append(query, k+"="+v)
		}
		path += "?" + strings.Join(query, "&")
	}

	var bookings []models.Booking
	if err := c.do(http.MethodGet, path, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) Booking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/v1/bookings/%d", id), nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) CreateBooking(req dto.CreateBookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(http.MethodPost, "/api/v1/bookings", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) UpdateBooking(id uint, req dto.UpdateBookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(http.MethodPatch, fmt.Sprintf("/api/v1/bookings/%d", id), req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) DeleteBooking(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/v1/bookings/%d", id), nil, nil)
}

func (c *Client) ChangeBookingStatus(id uint, status string) (*models.Booking, error) {
	var booking models.Booking
	req := dto.ChangeBookingStatusRequest{Status: status}
	if err := c.do(http.MethodPost, fmt.Sprintf("/api/v1/bookings/%d/status", id), req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) BookingStatusChanges(id uint) ([]models.BookingStatusChange, error) {
	var changes []models.BookingStatusChange
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/v1/bookings/%d/status-changes", id), nil, &changes); err != nil {
		return nil, err
	}
	return changes, nil
}

func (c *Client) AddBookingItem(id uint, req dto.BookingItemRequest) (*models.BookingItem, error) {
	var item models.BookingItem
	if err := c.do(http.MethodPost, fmt.Sprintf("/api/v1/bookings/%d/items", id), req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) RemoveBookingItem(bookingID, itemID uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/v1/bookings/%d/items/%d", bookingID, itemID), nil, nil)
}

// Analytics

func (c *Client) Analytics() (*dto.AnalyticsResponse, error) {
	var resp dto.AnalyticsResponse
	if err := c.do(http.MethodGet, "/api/v1/analytics", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
