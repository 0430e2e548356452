package rxnav

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"drugcheck/internal/domain"
	"drugcheck/internal/domain/entities"
	"drugcheck/internal/ports/output"
)

// DefaultBaseURL is the public RxNav REST root.
const DefaultBaseURL = "https://rxnav.nlm.nih.gov/REST"

var (
	_ output.IdentifierResolver = (*Client)(nil)
	_ output.InteractionLookup  = (*Client)(nil)
)

// Client talks to the RxNav registry. Every call is a single attempt.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// NewClient builds a Client for baseURL (DefaultBaseURL when empty).
// A zero timeout leaves the http.Client without one.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("rxnav: invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("rxnav: invalid base url %q: missing scheme or host", baseURL)
	}
	return &Client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

type idGroupResponse struct {
	IDGroup struct {
		Name     string   `json:"name"`
		RxNormID []string `json:"rxnormId"`
	} `json:"idGroup"`
}

// ResolveName looks name up in exact-match mode and returns its RxCUIs in
// registry order.
func (c *Client) ResolveName(ctx context.Context, name entities.DrugName) ([]entities.DrugIdentifier, error) {
	q := url.Values{}
	q.Set("name", string(name))
	q.Set("search", "0")

	var out idGroupResponse
	if err := c.getJSON(ctx, "rxcui", c.resolve("rxcui.json", q.Encode()), &out); err != nil {
		return nil, domain.NewError(domain.KindTransport, string(name), err)
	}
	if len(out.IDGroup.RxNormID) == 0 {
		return nil, domain.NewError(domain.KindNotRecognized, string(name), nil)
	}

	ids := make([]entities.DrugIdentifier, 0, len(out.IDGroup.RxNormID))
	for _, id := range out.IDGroup.RxNormID {
		ids = append(ids, entities.DrugIdentifier(id))
	}
	return ids, nil
}

type interactionListResponse struct {
	FullInteractionTypeGroup []struct {
		SourceName          string `json:"sourceName"`
		FullInteractionType []struct {
			Comment         string `json:"comment"`
			InteractionPair []struct {
				Severity    string `json:"severity"`
				Description string `json:"description"`
			} `json:"interactionPair"`
		} `json:"fullInteractionType"`
	} `json:"fullInteractionTypeGroup"`
}

// FindInteractions queries the multi-id interaction list. It returns an empty
// slice when the registry reports no interaction group.
func (c *Client) FindInteractions(ctx context.Context, ids []entities.DrugIdentifier) ([]entities.Interaction, error) {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, url.QueryEscape(string(id)))
	}
	rawQuery := "rxcuis=" + strings.Join(parts, "+")

	var out interactionListResponse
	if err := c.getJSON(ctx, "interactionList", c.resolve("interaction/list.json", rawQuery), &out); err != nil {
		return nil, domain.NewError(domain.KindTransport, "", err)
	}

	interactions := []entities.Interaction{}
	for _, group := range out.FullInteractionTypeGroup {
		for _, typ := range group.FullInteractionType {
			if len(typ.InteractionPair) == 0 {
				continue
			}
			interactions = append(interactions, entities.Interaction{
				Description: typ.InteractionPair[0].Description,
			})
		}
	}
	return interactions, nil
}

func (c *Client) resolve(rel, rawQuery string) *url.URL {
	u := *c.baseURL
	u.Path = path.Join("/", u.Path, rel)
	u.RawQuery = rawQuery
	return &u
}

func (c *Client) getJSON(ctx context.Context, op string, u *url.URL, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode/100 != 2 {
		return newHTTPError(op, resp, b)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s response: %w", op, err)
	}
	return nil
}
