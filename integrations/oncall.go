package integrations

import (
	"github.com/eulerbot/eulerbot"
	"github.com/eulerbot/eulerbot/config"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
	"github.com/slack-go/slack"
	"github.com/spf13/viper"
)

const (
	// UnknownOnCall is returned when nobody is on call or the schedule can't be reached
	UnknownOnCall = "unknown"

	onCallPath     = "/v2/schedules/{schedule}/on-calls"
	onCallCacheKey = "og.schedule.oncall"
)

// OnCallSchedule is implemented by any value that can tell who is on call for a schedule.
//
// OpsGenieSchedule implements this interface
type OnCallSchedule interface {
	OnCall(schedule string) (recipient string, err error)
}

// emailFinder is implemented by any value that can find a slack user by email.
//
// eulerbot.UserDirectory implements this interface
type emailFinder interface {
	FindByEmail(email string) (user slack.User, found bool, err error)
}

// OpsGenieSchedule retrieves on-call information from the OpsGenie schedule api
type OpsGenieSchedule struct {
	client *resty.Client
	log    eulerbot.SLogger
}

type onCallResponse struct {
	Data struct {
		OnCallRecipients []string `json:"onCallRecipients"`
	} `json:"data"`
}

// NewOpsGenieSchedule creates a new OpsGenieSchedule with the configured api url and key
func NewOpsGenieSchedule(v *viper.Viper, logger eulerbot.SLogger) (s *OpsGenieSchedule) {
	s = new(OpsGenieSchedule)
	s.log = logger
	s.client = resty.New().
		SetBaseURL(v.GetString(config.OpsGenieURLKey)).
		SetTimeout(v.GetDuration(config.HTTPTimeoutKey)).
		SetHeader("Authorization", "GenieKey "+v.GetString(config.OpsGenieAPIKeyKey))

	return s
}

// OnCall returns the first on-call recipient (usually an email) of the schedule with the given name.
// UnknownOnCall is returned when nobody is on call
func (s *OpsGenieSchedule) OnCall(schedule string) (recipient string, err error) {
	s.log.Debugf("Requesting on-call of [%s] from OpsGenie", schedule)

	result := new(onCallResponse)
	resp, err := s.client.R().
		SetPathParam("schedule", schedule).
		SetQueryParams(map[string]string{"scheduleIdentifierType": "name", "flat": "true"}).
		SetResult(result).
		Get(onCallPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to request on-call of [%s]", schedule)
	}

	if resp.IsError() {
		return "", errors.Errorf("opsgenie returned status [%d] for the on-call of [%s]", resp.StatusCode(), schedule)
	}

	if len(result.Data.OnCallRecipients) == 0 {
		return UnknownOnCall, nil
	}

	return result.Data.OnCallRecipients[0], nil
}

// OnCallResolver finds the slack user id of the engineer on call. The result is kept for
// the configured time-to-live
type OnCallResolver struct {
	schedule     OnCallSchedule
	scheduleName string
	users        emailFinder
	cache        *expirable.LRU[string, string]
	log          eulerbot.SLogger
}

// NewOnCallResolver creates a new OnCallResolver for the configured schedule
func NewOnCallResolver(v *viper.Viper, schedule OnCallSchedule, users emailFinder, logger eulerbot.SLogger) (r *OnCallResolver) {
	r = new(OnCallResolver)
	r.schedule = schedule
	r.scheduleName = v.GetString(config.OpsGenieScheduleKey)
	r.users = users
	r.log = logger
	r.cache = expirable.NewLRU[string, string](1, nil, v.GetDuration(config.OpsGenieOnCallCacheTTLKey))

	return r
}

// OnCall returns the slack user id of the engineer on call. When no slack user has the
// on-call email, the email itself is returned. UnknownOnCall is returned if the schedule
// can't be reached. Nothing is cached when either lookup fails
func (r *OnCallResolver) OnCall() (onCall string) {
	if cached, ok := r.cache.Get(onCallCacheKey); ok {
		return cached
	}

	email, err := r.schedule.OnCall(r.scheduleName)
	if err != nil {
		r.log.Printf("Unable to get the on-call of [%s]: %v", r.scheduleName, err)
		return UnknownOnCall
	}

	r.log.Debugf("On-call email: %s", email)
	onCall = email

	u, found, err := r.users.FindByEmail(email)
	if err != nil {
		r.log.Printf("Unable to look up slack user with email [%s]: %v", email, err)
		return onCall
	}

	if found {
		r.log.Debugf("On-call email [%s] matches [%s]", email, u.Name)
		onCall = u.ID
	}

	r.cache.Add(onCallCacheKey, onCall)

	return onCall
}
