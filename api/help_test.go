package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/geoshield-inc/geoshield-api/api/mocks"
	"github.com/geoshield-inc/geoshield-api/realtime"
	"github.com/geoshield-inc/geoshield-api/schema"
	"github.com/geoshield-inc/geoshield-api/store"
)

func newTestServer(core store.GeoShieldCore, b realtime.Broadcaster) (*Server, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	s := &Server{
		store:       core,
		broadcaster: b,
	}
	return s, s.setupRouter()
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	return resp
}

func TestAskForHelp(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockGeoShieldCore(ctl)
	b := mocks.NewMockBroadcaster(ctl)
	_, router := newTestServer(a, b)

	params := schema.NewHelpRequest{
		Type:        schema.Medical,
		Urgency:     schema.UrgencyUrgent,
		PeopleCount: 3,
		Description: "broken leg",
		Latitude:    43.25,
		Longitude:   -79.86,
	}
	created := &schema.HelpRequest{
		ID:          "req-1",
		Type:        params.Type,
		Urgency:     params.Urgency,
		PeopleCount: params.PeopleCount,
		Description: params.Description,
		Latitude:    params.Latitude,
		Longitude:   params.Longitude,
		Status:      schema.HelpPending,
		CreatedAt:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	gomock.InOrder(
		a.EXPECT().CreateRequest(params).Return(created, nil).Times(1),
		b.EXPECT().Broadcast(realtime.EventNewRequest, created).Times(1),
	)

	w := doJSON(router, "POST", "/api/requests", params)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp schema.HelpRequest
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.Equal(t, "req-1", resp.ID)
	assert.Equal(t, schema.HelpPending, resp.Status)
}

func TestAskForHelpInvalid(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockGeoShieldCore(ctl)
	b := mocks.NewMockBroadcaster(ctl)
	_, router := newTestServer(a, b)

	a.EXPECT().CreateRequest(gomock.Any()).Return(nil, store.ErrInvalidPeopleCount).Times(1)

	w := doJSON(router, "POST", "/api/requests", gin.H{"type": "Medical", "urgency": "High", "peopleCount": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Equal(t, int64(1203), decodeError(t, w).Code)
}

func TestAskForHelpMalformedBody(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_, router := newTestServer(mocks.NewMockGeoShieldCore(ctl), mocks.NewMockBroadcaster(ctl))

	req := httptest.NewRequest("POST", "/api/requests", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Equal(t, errorInvalidParameters, decodeError(t, w))
}

func TestListRequests(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockGeoShieldCore(ctl)
	_, router := newTestServer(a, nil)

	a.EXPECT().ListRequests().Return([]schema.HelpRequest{
		{ID: "req-1", Status: schema.HelpPending},
		{ID: "req-2", Status: schema.HelpFulfilled},
	}).Times(1)

	w := doJSON(router, "GET", "/api/requests", nil)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp []schema.HelpRequest
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.Len(t, resp, 2)
}

func TestUpdateHelp(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockGeoShieldCore(ctl)
	b := mocks.NewMockBroadcaster(ctl)
	_, router := newTestServer(a, b)

	urgency := schema.UrgencyHigh
	updated := &schema.HelpRequest{ID: "req-1", Urgency: urgency, Status: schema.HelpPending}

	a.EXPECT().UpdateRequest("req-1", schema.HelpRequestPatch{Urgency: &urgency}).Return(updated, nil, nil).Times(1)
	b.EXPECT().Broadcast(realtime.EventRequestUpdated, updated).Times(1)

	w := doJSON(router, "PUT", "/api/requests/req-1", gin.H{"urgency": "High"})
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestUpdateHelpStatusPublishesVolunteer(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockGeoShieldCore(ctl)
	b := mocks.NewMockBroadcaster(ctl)
	_, router := newTestServer(a, b)

	status := schema.HelpFulfilled
	updated := &schema.HelpRequest{ID: "req-1", Status: status, AssignedVolunteerID: "user-1"}
	volunteer := &schema.User{ID: "user-1", CompletedMissions: 1}

	a.EXPECT().UpdateRequest("req-1", schema.HelpRequestPatch{Status: &status}).Return(updated, volunteer, nil).Times(1)
	gomock.InOrder(
		b.EXPECT().Broadcast(realtime.EventRequestUpdated, updated).Times(1),
		b.EXPECT().Broadcast(realtime.EventUserUpdated, volunteer).Times(1),
	)

	w := doJSON(router, "PUT", "/api/requests/req-1", gin.H{"status": "Fulfilled"})
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestUpdateHelpNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockGeoShieldCore(ctl)
	b := mocks.NewMockBroadcaster(ctl)
	_, router := newTestServer(a, b)

	a.EXPECT().UpdateRequest("missing", gomock.Any()).Return(nil, nil, store.ErrRequestNotFound).Times(1)

	w := doJSON(router, "PUT", "/api/requests/missing", gin.H{"description": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
	assert.Equal(t, store.ErrRequestNotFound.Error(), decodeError(t, w).Message)
}

func TestUpdateHelpStoreFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockGeoShieldCore(ctl)
	_, router := newTestServer(a, mocks.NewMockBroadcaster(ctl))

	a.EXPECT().UpdateRequest("req-1", gomock.Any()).Return(nil, nil, assert.AnError).Times(1)

	w := doJSON(router, "PUT", "/api/requests/req-1", gin.H{"description": "x"})
	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")
	assert.Equal(t, errorInternalServer, decodeError(t, w))
}
