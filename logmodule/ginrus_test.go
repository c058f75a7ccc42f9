package logmodule

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally"
)

func serve(path string, status int, err error) *test.Hook {
	hook := test.NewGlobal()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Ginrus("API"))
	r.GET("/*any", func(c *gin.Context) {
		if err != nil {
			c.Error(err)
		}
		c.Status(status)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", path, nil))
	return hook
}

func TestGinrusLevels(t *testing.T) {
	cases := []struct {
		status int
		level  logrus.Level
	}{
		{http.StatusOK, logrus.InfoLevel},
		{http.StatusNotFound, logrus.WarnLevel},
		{http.StatusInternalServerError, logrus.ErrorLevel},
	}

	for _, tc := range cases {
		hook := serve("/api/requests", tc.status, nil)
		entry := hook.LastEntry()
		if assert.NotNil(t, entry) {
			assert.Equal(t, tc.level, entry.Level, "wrong level for %d", tc.status)
			assert.Equal(t, "API", entry.Data["prefix"])
			assert.Equal(t, tc.status, entry.Data["status"])
		}
	}
}

func TestGinrusKeepsQuery(t *testing.T) {
	hook := serve("/api/requests?status=Pending", http.StatusOK, nil)
	assert.Equal(t, "/api/requests?status=Pending", hook.LastEntry().Data["path"])
}

func TestGinrusContextErrors(t *testing.T) {
	hook := serve("/api/requests", http.StatusBadRequest, errors.New("bad payload"))
	entry := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Contains(t, entry.Message, "bad payload")
}

func TestStatsReporter(t *testing.T) {
	hook := test.NewGlobal()
	logrus.SetLevel(logrus.DebugLevel)

	r := NewStatsReporter("metrics")
	r.ReportCounter("api.requests_created", map[string]string{"env": "test"}, 2)

	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, "api.requests_created", entry.Data["metric"])
		assert.Equal(t, int64(2), entry.Data["value"])
		assert.Equal(t, "test", entry.Data["env"])
	}

	var reporter tally.StatsReporter = r
	assert.True(t, reporter.Capabilities().Reporting())
}
