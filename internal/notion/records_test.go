package notion

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avitalloeb-maker/notion-job-sync/internal/config"
	"github.com/avitalloeb-maker/notion-job-sync/internal/domain"
)

const pageJSON = `{
	"object": "page",
	"id": "page-123",
	"created_time": "2025-06-01T12:00:00.000Z",
	"last_edited_time": "2025-06-01T12:00:00.000Z",
	"archived": false,
	"url": "https://www.notion.so/page-123",
	"parent": {"type": "database_id", "database_id": "db-apps"},
	"properties": {}
}`

const queryJSON = `{
	"object": "list",
	"results": [` + pageJSON + `],
	"has_more": false,
	"next_cursor": null
}`

// stubTransport records every request and answers each with a canned body.
type stubTransport struct {
	requests []*http.Request
	bodies   []map[string]any
	respond  string
}

func (t *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		raw, _ := io.ReadAll(req.Body)
		_ = req.Body.Close()
		var decoded map[string]any
		_ = json.Unmarshal(raw, &decoded)
		t.bodies = append(t.bodies, decoded)
	} else {
		t.bodies = append(t.bodies, nil)
	}
	t.requests = append(t.requests, req)
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(t.respond)),
		Request:    req,
	}, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Notion.Token = "secret-token"
	cfg.Notion.Databases = config.Databases{
		Applications: "db-apps",
		Networking:   "db-net",
		Interviews:   "db-int",
		FollowUps:    "db-fup",
	}
	return cfg
}

func newTestClient(respond string) (*Client, *stubTransport) {
	st := &stubTransport{respond: respond}
	return New(testConfig(), discardLogger(), WithTransport(st)), st
}

func parentDatabaseID(t *testing.T, body map[string]any) string {
	t.Helper()
	parent, ok := body["parent"].(map[string]any)
	require.True(t, ok, "payload has no parent object")
	id, _ := parent["database_id"].(string)
	return id
}

func properties(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	props, ok := body["properties"].(map[string]any)
	require.True(t, ok, "payload has no properties object")
	return props
}

func TestCreateApplication(t *testing.T) {
	c, st := newTestClient(pageJSON)

	pageID, err := c.CreateApplication(context.Background(), domain.Application{
		Company: "Meta",
		Role:    "Program Manager",
		JDLink:  "https://example.com/jd",
	})
	require.NoError(t, err)
	assert.Equal(t, "page-123", pageID)

	require.Len(t, st.requests, 1)
	assert.Equal(t, "/v1/pages", st.requests[0].URL.Path)
	assert.Equal(t, "db-apps", parentDatabaseID(t, st.bodies[0]))

	props := properties(t, st.bodies[0])
	for _, key := range []string{
		"Company", "Role", "Date Applied", "Status", "JD Summary",
		"JD Link", "Location", "Salary Range", "Priority",
	} {
		assert.Contains(t, props, key)
	}
}

func TestCreateApplicationRequiresCompanyAndRole(t *testing.T) {
	c, st := newTestClient(pageJSON)

	_, err := c.CreateApplication(context.Background(), domain.Application{Role: "PM"})
	require.Error(t, err)
	_, err = c.CreateApplication(context.Background(), domain.Application{Company: "Meta"})
	require.Error(t, err)
	assert.Empty(t, st.requests, "invalid applications must not reach the API")
}

func TestAddNetworkContact(t *testing.T) {
	c, st := newTestClient(pageJSON)

	_, err := c.AddNetworkContact(context.Background(), domain.NetworkContact{
		Name:  "Jane Doe",
		Email: "jane@example.com",
	})
	require.NoError(t, err)

	require.Len(t, st.requests, 1)
	assert.Equal(t, "db-net", parentDatabaseID(t, st.bodies[0]))

	props := properties(t, st.bodies[0])
	status, ok := props["Status"].(map[string]any)
	require.True(t, ok)
	sel, ok := status["select"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Cold", sel["name"], "contact status defaults to Cold")
}

func TestAddNetworkContactRequiresName(t *testing.T) {
	c, st := newTestClient(pageJSON)

	_, err := c.AddNetworkContact(context.Background(), domain.NetworkContact{Company: "Meta"})
	require.Error(t, err)
	assert.Empty(t, st.requests)
}

func TestAddInterview(t *testing.T) {
	c, st := newTestClient(pageJSON)

	_, err := c.AddInterview(context.Background(), domain.Interview{
		ApplicationPageID: "page-app",
		Stage:             "Phone Screen",
	})
	require.NoError(t, err)

	require.Len(t, st.requests, 1)
	assert.Equal(t, "db-int", parentDatabaseID(t, st.bodies[0]))

	props := properties(t, st.bodies[0])
	outcome, ok := props["Outcome"].(map[string]any)
	require.True(t, ok)
	sel, ok := outcome["select"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Pending", sel["name"], "interview outcome defaults to Pending")

	_, err = c.AddInterview(context.Background(), domain.Interview{Stage: "Onsite"})
	require.Error(t, err, "interview without application page ID must fail")
}

func TestAddFollowUp(t *testing.T) {
	c, st := newTestClient(pageJSON)

	pageID, err := c.AddFollowUp(context.Background(), domain.FollowUp{
		Task: "ping recruiter",
	})
	require.NoError(t, err)
	assert.Equal(t, "page-123", pageID)

	require.Len(t, st.requests, 1)
	assert.Equal(t, "db-fup", parentDatabaseID(t, st.bodies[0]))

	props := properties(t, st.bodies[0])
	completed, ok := props["Completed"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, completed["checkbox"], "completed defaults to an explicit false")

	_, err = c.AddFollowUp(context.Background(), domain.FollowUp{})
	require.Error(t, err, "follow-up without a task must fail")
}

func TestQueryByText(t *testing.T) {
	c, st := newTestClient(queryJSON)

	pages, err := c.QueryByText(context.Background(), "db-apps", "Company", "Meta")
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "page-123", pages[0].ID)

	require.Len(t, st.requests, 1)
	assert.Equal(t, "/v1/databases/db-apps/query", st.requests[0].URL.Path)

	filter, ok := st.bodies[0]["filter"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Company", filter["property"])
	richText, ok := filter["rich_text"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Meta", richText["contains"])
}

func TestUpdateSelect(t *testing.T) {
	c, st := newTestClient(pageJSON)

	err := c.UpdateSelect(context.Background(), "page-123", "Status", "Interviewing")
	require.NoError(t, err)

	require.Len(t, st.requests, 1)
	assert.Equal(t, http.MethodPatch, st.requests[0].Method)
	assert.Equal(t, "/v1/pages/page-123", st.requests[0].URL.Path)
}

func TestFetchRecord(t *testing.T) {
	c, st := newTestClient(pageJSON)

	page, err := c.FetchRecord(context.Background(), "page-123")
	require.NoError(t, err)
	assert.Equal(t, "page-123", page.ID)

	require.Len(t, st.requests, 1)
	assert.Equal(t, http.MethodGet, st.requests[0].Method)
	assert.Equal(t, "/v1/pages/page-123", st.requests[0].URL.Path)
}

func TestPing(t *testing.T) {
	c, st := newTestClient(queryJSON)

	require.NoError(t, c.Ping(context.Background()))
	require.Len(t, st.requests, 1)
	assert.Equal(t, "/v1/databases/db-apps/query", st.requests[0].URL.Path)
}
