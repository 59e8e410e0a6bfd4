package integrations

import (
	"fmt"
	"github.com/andygrunwald/go-jira"
	"github.com/eulerbot/eulerbot"
	"github.com/eulerbot/eulerbot/config"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"strings"
)

const issueCacheSize = 512

// issueFields are the fields fetched for every issue
var issueFields = []string{
	"assignee",
	"issuetype",
	"status",
	"labels",
	"components",
	"reporter",
	"watches",
	"created",
	"updated",
	"description",
	"summary",
	"comment",
	"priority",
	"customfield_10751",
	"customfield_10003",
}

// IssueManager looks up jira issues and keeps the successful lookups in cache for the
// configured time-to-live
type IssueManager struct {
	server string
	client *jira.Client
	issues *expirable.LRU[string, *jira.Issue]
	log    eulerbot.SLogger
}

// NewIssueManager creates a new IssueManager authenticating to the configured jira server
// with basic auth
func NewIssueManager(v *viper.Viper, logger eulerbot.SLogger) (im *IssueManager, err error) {
	im = new(IssueManager)
	im.server = strings.TrimSuffix(v.GetString(config.JiraServerKey), "/")
	im.log = logger
	im.issues = expirable.NewLRU[string, *jira.Issue](issueCacheSize, nil, v.GetDuration(config.JiraIssueCacheTTLKey))

	tp := jira.BasicAuthTransport{Username: v.GetString(config.JiraUserKey), Password: v.GetString(config.JiraPasswordKey)}
	httpClient := tp.Client()
	httpClient.Timeout = v.GetDuration(config.HTTPTimeoutKey)

	if im.client, err = jira.NewClient(httpClient, im.server); err != nil {
		return nil, errors.Wrapf(err, "failed to create jira client for [%s]", im.server)
	}

	im.log.Debugf("Loaded IssueManager for %s", im.server)

	return im, nil
}

// Issue returns the issue with the given id. Lookup failures are returned and never cached
func (im *IssueManager) Issue(id string) (issue *jira.Issue, err error) {
	key := fmt.Sprintf("jira.issue.%s", id)
	if cached, ok := im.issues.Get(key); ok {
		im.log.Debugf("Returning cached issue [%s]", id)
		return cached, nil
	}

	issue, _, err = im.client.Issue.Get(id, &jira.GetQueryOptions{Fields: strings.Join(issueFields, ",")})
	if err != nil {
		return nil, errors.Wrapf(err, "error retrieving issue [%s]", id)
	}

	im.issues.Add(key, issue)

	return issue, nil
}

// Permalink returns the browse url of an issue
func (im *IssueManager) Permalink(issue *jira.Issue) string {
	return fmt.Sprintf("%s/browse/%s", im.server, issue.Key)
}
