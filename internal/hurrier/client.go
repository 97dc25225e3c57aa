// Package hurrier talks to the undocumented dk.usehurrier.com API that backs
// the Roadrunner courier app. It covers login, the two open-shift feeds
// (swaps and unassigned shifts) and the two take-shift calls.
package hurrier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/HiImDanix/hungry-shift-helper/internal/domain"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain/contract"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain/entity"
)

const (
	apiDomain = "https://dk.usehurrier.com"
	timeZone  = "Europe/Copenhagen"

	// the token is valid for 3600s upstream; keep a 100s safety buffer
	tokenTTL = 3500 * time.Second

	// how far ahead to ask for shifts
	listingWindow = 30 * 24 * time.Hour

	requestTimeout = 10 * time.Second
)

// Credentials identify one courier account. EmployeeID is shown in the
// Roadrunner app under "my profile".
type Credentials struct {
	Email      string
	Password   string
	EmployeeID int64
}

// Client implements contract.ShiftSource and contract.ClaimSink against the
// usehurrier API. It caches the bearer token in memory and, when a session
// repo is given, in storage so separate one-shot runs skip the login.
type Client struct {
	hc       *http.Client
	baseURL  string
	creds    Credentials
	sessions contract.SessionRepo

	session         *entity.Session
	appVersion      int
	appShortVersion string

	now func() time.Time
}

func New(creds Credentials, sessions contract.SessionRepo) *Client {
	return &Client{
		hc:       &http.Client{Timeout: requestTimeout},
		baseURL:  apiDomain,
		creds:    creds,
		sessions: sessions,
		now:      time.Now,
	}
}

// Authenticate logs in and caches the resulting session. Called lazily by
// every API method once the current token is missing or expired.
func (c *Client) Authenticate(ctx context.Context) error {
	if c.appVersion == 0 {
		c.appVersion, c.appShortVersion = c.probeAppVersion(ctx)
	}
	log.Println("Authenticating against usehurrier...")

	payload, err := json.Marshal(map[string]any{
		"user": map[string]string{
			"user_name": c.creds.Email,
			"password":  c.creds.Password,
		},
	})
	if err != nil {
		return err
	}

	status, body, err := c.do(ctx, http.MethodPost, "/api/mobile/auth", nil, payload)
	if err != nil {
		return fmt.Errorf("auth request failed: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w (status=%d): wrong credentials?", domain.ErrAuthFailed, status)
	}

	var resp struct {
		Token  string `json:"token"`
		CityID int64  `json:"city_id"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || resp.Token == "" {
		return fmt.Errorf("auth response has unexpected shape: %w", err)
	}

	c.session = &entity.Session{
		Token:     resp.Token,
		ExpiresAt: c.now().Add(tokenTTL),
		CityID:    resp.CityID,
	}
	if c.sessions != nil {
		if err := c.sessions.Save(c.session); err != nil {
			log.Printf("Failed to persist session: %v", err)
		}
	}
	return nil
}

// FetchShifts returns the union of the available-swaps and unassigned-shifts
// feeds, deduplicated by shift id with feed order preserved.
func (c *Client) FetchShifts(ctx context.Context) ([]contract.RawShift, error) {
	if err := c.ensureAuth(ctx); err != nil {
		return nil, err
	}

	swaps, err := c.fetchListing(ctx, fmt.Sprintf("/api/rooster/v3/employees/%d/available_swaps", c.creds.EmployeeID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch swap shifts: %w", err)
	}
	unassigned, err := c.fetchListing(ctx, fmt.Sprintf("/api/rooster/v3/employees/%d/available_unassigned_shifts", c.creds.EmployeeID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unassigned shifts: %w", err)
	}

	seen := make(map[int64]struct{}, len(swaps)+len(unassigned))
	var all []contract.RawShift
	for _, raw := range append(swaps, unassigned...) {
		if _, ok := seen[raw.ShiftID]; ok && raw.ShiftID != 0 {
			continue
		}
		seen[raw.ShiftID] = struct{}{}
		all = append(all, raw)
	}
	return all, nil
}

// SubmitClaim tries to take the shift. Conflict-type responses (the shift was
// taken or withdrawn while we looked at it) map to domain.ErrShiftTaken; any
// other failure is returned as is and treated as transient by the caller.
func (c *Client) SubmitClaim(ctx context.Context, shift *entity.Shift) error {
	if err := c.ensureAuth(ctx); err != nil {
		return err
	}

	var (
		status int
		err    error
	)
	switch shift.Status {
	case domain.StatusPending:
		status, _, err = c.do(ctx, http.MethodPost, fmt.Sprintf("/api/rooster/v3/%d/swap", shift.ID), nil, nil)
	case domain.StatusUnassigned:
		var payload []byte
		payload, err = json.Marshal(map[string]any{
			"id":                shift.ID,
			"start_at":          shift.Start.Format(shiftParamLayout),
			"end_at":            shift.End.Format(shiftParamLayout),
			"starting_point_id": shift.StartingPointID,
			"employee_ids":      []int64{c.creds.EmployeeID},
		})
		if err != nil {
			return err
		}
		status, _, err = c.do(ctx, http.MethodPost, fmt.Sprintf("/api/rooster/v3/unassigned_shifts/%d/assign", shift.ID), nil, payload)
	default:
		return fmt.Errorf("shift %d has status %s: %w", shift.ID, shift.Status, domain.ErrShiftTaken)
	}
	if err != nil {
		return fmt.Errorf("claim request for shift %d failed: %w", shift.ID, err)
	}

	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusConflict || status == http.StatusGone || status == http.StatusUnprocessableEntity:
		return fmt.Errorf("claim rejected (status=%d): %w", status, domain.ErrShiftTaken)
	default:
		return fmt.Errorf("claim for shift %d failed (status=%d)", shift.ID, status)
	}
}

const shiftParamLayout = "2006-01-02T15:04:05"

func (c *Client) ensureAuth(ctx context.Context) error {
	if c.session == nil && c.sessions != nil {
		stored, err := c.sessions.Get()
		if err != nil {
			log.Printf("Failed to load stored session: %v", err)
		} else if stored != nil {
			c.session = stored
		}
	}
	if c.session.Valid(c.now()) {
		return nil
	}
	return c.Authenticate(ctx)
}

func (c *Client) fetchListing(ctx context.Context, path string) ([]contract.RawShift, error) {
	now := c.now().UTC()
	query := url.Values{}
	query.Set("start_at", now.Format("2006-01-02T15:04:05.000Z"))
	query.Set("end_at", now.Add(listingWindow).Format("2006-01-02T15:04:05.000Z"))
	query.Set("city_id", fmt.Sprintf("%d", c.session.CityID))
	query.Set("with_time_zone", timeZone)

	status, body, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("listing request failed (status=%d)", status)
	}

	var raws []contract.RawShift
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil, fmt.Errorf("listing response is not valid JSON: %w", err)
	}
	return raws, nil
}

// do sends one request with the Roadrunner user agent and, when a session is
// cached, bearer auth. A 401 drops the cached session so the next call
// re-authenticates.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte) (int, []byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("User-Agent", fmt.Sprintf("Roadrunner/ANDROID/%d/%s", c.appVersion, c.appShortVersion))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil && c.session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.session = nil
	}
	return resp.StatusCode, respBody, nil
}
