package client

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/geoshield-inc/geoshield-api/schema"
)

const defaultTimeout = 10 * time.Second

var errResponseStatus = fmt.Errorf("response status not ok")

// API is the read side of the REST gateway a client reloads from
type API interface {
	Requests() ([]schema.HelpRequest, error)
	Users() ([]schema.User, error)
	SafeZones() ([]schema.SafeZone, error)
}

type api struct {
	url    string
	client *http.Client
}

func (a api) get(path string, v interface{}) error {
	resp, err := a.client.Get(a.url + path)
	if nil != err {
		return err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s %d", errResponseStatus, path, resp.StatusCode)
	}

	return json.Unmarshal(d, v)
}

func (a api) Requests() ([]schema.HelpRequest, error) {
	var requests []schema.HelpRequest
	if err := a.get("/requests", &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (a api) Users() ([]schema.User, error) {
	var users []schema.User
	if err := a.get("/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (a api) SafeZones() ([]schema.SafeZone, error) {
	var zones []schema.SafeZone
	if err := a.get("/safe-zones", &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

// NewAPI returns a client of the REST gateway mounted at url, for example
// http://localhost:3001/api
func NewAPI(url string) API {
	return &api{
		url:    strings.TrimRight(url, "/"),
		client: &http.Client{Timeout: defaultTimeout},
	}
}
