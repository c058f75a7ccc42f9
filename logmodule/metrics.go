package logmodule

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
)

// StatsReporter writes every reported metric to the log at debug level
type StatsReporter struct {
	log *logrus.Entry
}

func NewStatsReporter(prefix string) *StatsReporter {
	return &StatsReporter{log: logrus.WithField("prefix", prefix)}
}

func (r *StatsReporter) entry(name string, tags map[string]string) *logrus.Entry {
	fields := logrus.Fields{"metric": name}
	for k, v := range tags {
		fields[k] = v
	}
	return r.log.WithFields(fields)
}

func (r *StatsReporter) ReportCounter(name string, tags map[string]string, value int64) {
	r.entry(name, tags).WithField("value", value).Debug("counter")
}

func (r *StatsReporter) ReportGauge(name string, tags map[string]string, value float64) {
	r.entry(name, tags).WithField("value", value).Debug("gauge")
}

func (r *StatsReporter) ReportTimer(name string, tags map[string]string, interval time.Duration) {
	r.entry(name, tags).WithField("value", interval).Debug("timer")
}

func (r *StatsReporter) ReportHistogramValueSamples(name string, tags map[string]string, _ tally.Buckets, lower, upper float64, samples int64) {
	r.entry(name, tags).WithFields(logrus.Fields{
		"lower":   lower,
		"upper":   upper,
		"samples": samples,
	}).Debug("histogram")
}

func (r *StatsReporter) ReportHistogramDurationSamples(name string, tags map[string]string, _ tally.Buckets, lower, upper time.Duration, samples int64) {
	r.entry(name, tags).WithFields(logrus.Fields{
		"lower":   lower,
		"upper":   upper,
		"samples": samples,
	}).Debug("histogram")
}

func (r *StatsReporter) Capabilities() tally.Capabilities {
	return r
}

func (r *StatsReporter) Reporting() bool {
	return true
}

func (r *StatsReporter) Tagging() bool {
	return true
}

func (r *StatsReporter) Flush() {}
