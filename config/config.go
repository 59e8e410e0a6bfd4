// Package config provides the configuration keys, defaults and environment bindings
// of an eulerbot instance. Everything is exposed through a viper instance
package config

import (
	"github.com/spf13/viper"
	"time"
)

// Bot configuration keys
const (
	NameKey           = "name"           // The bot display name, also used to find the bot's own user id
	TokenKey          = "token"          // Slack bot token
	DebugKey          = "debug"          // Debug mode, boolean value
	PollIntervalKey   = "pollInterval"   // Time to wait between two reads of the real time firehose, duration value
	ConnectTimeoutKey = "connectTimeout" // Maximum time to wait for the real time connection to be established, duration value
	UserCacheTTLKey   = "userCacheTTL"   // Time to keep the slack user list in cache, duration value
	LogFileKey        = "logFile"        // Optional path of a rotated log file, logs go to stdout only when empty
	HTTPTimeoutKey    = "httpTimeout"    // Timeout applied to calls made to jira and opsgenie, duration value
)

// Jira integration configuration keys
const (
	JiraServerKey        = "jira.server"
	JiraUserKey          = "jira.user"
	JiraPasswordKey      = "jira.password"
	JiraProjectKeyKey    = "jira.projectKey"
	JiraIssueCacheTTLKey = "jira.issueCacheTTL"
	JiraCooldownKey      = "jira.cooldown"
)

// OpsGenie and support integration configuration keys
const (
	OpsGenieAPIKeyKey         = "opsgenie.apiKey"
	OpsGenieURLKey            = "opsgenie.url"
	OpsGenieScheduleKey       = "opsgenie.schedule"
	OpsGenieOnCallCacheTTLKey = "opsgenie.onCallCacheTTL"
	NLPModelKey               = "nlp.model"
)

const (
	defaultName              = "SlackBot"
	defaultPollInterval      = time.Second
	defaultConnectTimeout    = 30 * time.Second
	defaultUserCacheTTL      = 60 * time.Second
	defaultHTTPTimeout       = 10 * time.Second
	defaultJiraServer        = "http://127.0.0.1"
	defaultJiraUser          = "admin"
	defaultJiraPassword      = "admin"
	defaultJiraProjectKey    = "SDO"
	defaultJiraIssueCacheTTL = 60 * time.Second
	defaultJiraCooldown      = 60 * time.Second
	defaultOpsGenieURL       = "https://api.opsgenie.com"
	defaultOpsGenieSchedule  = "OpsEng_OnCall_Pri"
	defaultOnCallCacheTTL    = 300 * time.Second

	// BuiltinNLPModel selects the tagger model bundled with the language parser
	BuiltinNLPModel = "builtin"
)

// envBindings maps each configuration key to the environment variable that sets it
var envBindings = map[string]string{
	NameKey:                   "SLACKBOT_BOT_NAME",
	TokenKey:                  "SLACKBOT_TOKEN",
	DebugKey:                  "SLACKBOT_DEBUG",
	PollIntervalKey:           "SLACKBOT_POLL_INTERVAL",
	ConnectTimeoutKey:         "SLACKBOT_CONNECT_TIMEOUT",
	UserCacheTTLKey:           "SLACKBOT_USER_CACHE_TTL",
	LogFileKey:                "SLACKBOT_LOG_FILE",
	HTTPTimeoutKey:            "SLACKBOT_HTTP_TIMEOUT",
	JiraServerKey:             "JIRA_SERVER",
	JiraUserKey:               "JIRA_USER",
	JiraPasswordKey:           "JIRA_PASSWORD",
	JiraProjectKeyKey:         "JIRA_PROJECT_KEY",
	JiraIssueCacheTTLKey:      "JIRA_ISSUE_CACHE_TTL",
	JiraCooldownKey:           "JIRA_COOLDOWN",
	OpsGenieAPIKeyKey:         "OPSGENIE_API_KEY",
	OpsGenieURLKey:            "OPSGENIE_API_URL",
	OpsGenieScheduleKey:       "OPSGENIE_SCHEDULE",
	OpsGenieOnCallCacheTTLKey: "OPSGENIE_ONCALL_CACHE_TTL",
	NLPModelKey:               "SLACKBOT_SUPPORT_NLP_MODEL",
}

// NewViperWithDefaults creates a new viper instance with all default values set
func NewViperWithDefaults() (v *viper.Viper) {
	return LayerConfigWithDefaults(viper.New())
}

// LayerConfigWithDefaults sets the defaults on the given viper instance. Values already
// set on the instance take precedence over the defaults
func LayerConfigWithDefaults(v *viper.Viper) (lv *viper.Viper) {
	v.SetDefault(NameKey, defaultName)
	v.SetDefault(TokenKey, "")
	v.SetDefault(DebugKey, false)
	v.SetDefault(PollIntervalKey, defaultPollInterval)
	v.SetDefault(ConnectTimeoutKey, defaultConnectTimeout)
	v.SetDefault(UserCacheTTLKey, defaultUserCacheTTL)
	v.SetDefault(LogFileKey, "")
	v.SetDefault(HTTPTimeoutKey, defaultHTTPTimeout)

	v.SetDefault(JiraServerKey, defaultJiraServer)
	v.SetDefault(JiraUserKey, defaultJiraUser)
	v.SetDefault(JiraPasswordKey, defaultJiraPassword)
	v.SetDefault(JiraProjectKeyKey, defaultJiraProjectKey)
	v.SetDefault(JiraIssueCacheTTLKey, defaultJiraIssueCacheTTL)
	v.SetDefault(JiraCooldownKey, defaultJiraCooldown)

	v.SetDefault(OpsGenieAPIKeyKey, "")
	v.SetDefault(OpsGenieURLKey, defaultOpsGenieURL)
	v.SetDefault(OpsGenieScheduleKey, defaultOpsGenieSchedule)
	v.SetDefault(OpsGenieOnCallCacheTTLKey, defaultOnCallCacheTTL)
	v.SetDefault(NLPModelKey, BuiltinNLPModel)

	return v
}

// NewViperFromEnv returns a viper instance with defaults where every key is also
// bound to its environment variable (i.e. SLACKBOT_TOKEN, JIRA_SERVER, etc.)
func NewViperFromEnv() (v *viper.Viper, err error) {
	v = NewViperWithDefaults()

	for key, env := range envBindings {
		if err = v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// EnvVar returns the environment variable bound to a configuration key or an
// empty string if the key isn't settable from the environment
func EnvVar(key string) (env string) {
	return envBindings[key]
}
