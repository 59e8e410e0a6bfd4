package integrations

import (
	"fmt"
	"github.com/andygrunwald/go-jira"
	"github.com/eulerbot/eulerbot"
	"github.com/eulerbot/eulerbot/config"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"regexp"
	"strings"
	"sync/atomic"
)

const (
	// IssueLinkerName is the name of the jira issue linker responder
	IssueLinkerName = "jiraIssueLinker"

	// defaultUserName is used in replies to messages without a user
	defaultUserName = "strange"

	cooldownCacheSize = 1024
)

// IssueFinder is implemented by any value that can look up jira issues and link to them.
//
// IssueManager implements this interface
type IssueFinder interface {
	Issue(id string) (issue *jira.Issue, err error)
	Permalink(issue *jira.Issue) string
}

// IssueLinker posts a link to the jira issues mentioned in messages. An issue that was answered
// isn't answered again, in any channel, until the cooldown expires
type IssueLinker struct {
	id           uuid.UUID
	projectKey   string
	issuePattern *regexp.Regexp
	finder       IssueFinder
	poster       eulerbot.Poster
	cooldown     *expirable.LRU[string, struct{}]
	log          eulerbot.SLogger

	eventsReceived  atomic.Uint64
	eventsProcessed atomic.Uint64
}

// NewJiraIssueLinker creates an IssueLinker looking up issues on the configured jira server
func NewJiraIssueLinker(services *eulerbot.BotServices) (r eulerbot.Responder, err error) {
	manager, err := NewIssueManager(services.Config, services.Log)
	if err != nil {
		return nil, err
	}

	return NewIssueLinker(services.Config, services.Poster, manager, services.Log), nil
}

// NewIssueLinker creates a new IssueLinker for the configured project key
func NewIssueLinker(v *viper.Viper, poster eulerbot.Poster, finder IssueFinder, logger eulerbot.SLogger) (il *IssueLinker) {
	il = new(IssueLinker)
	il.id = uuid.New()
	il.projectKey = strings.ToUpper(v.GetString(config.JiraProjectKeyKey))
	il.issuePattern = regexp.MustCompile(regexp.QuoteMeta(il.projectKey) + "-[0-9]+")
	il.finder = finder
	il.poster = poster
	il.log = logger

	if cooldown := v.GetDuration(config.JiraCooldownKey); cooldown > 0 {
		il.cooldown = expirable.NewLRU[string, struct{}](cooldownCacheSize, nil, cooldown)
	}

	il.log.Printf("Loaded Jira Management Integration [%s] for project [%s]", il.id, il.projectKey)

	return il
}

// Name returns the responder name
func (il *IssueLinker) Name() string {
	return IssueLinkerName
}

// ID returns the instance id of the responder
func (il *IssueLinker) ID() string {
	return il.id.String()
}

// EventsReceived returns the number of events the responder was updated with
func (il *IssueLinker) EventsReceived() uint64 {
	return il.eventsReceived.Load()
}

// EventsProcessed returns the number of events answered with an issue link or a not found message
func (il *IssueLinker) EventsProcessed() uint64 {
	return il.eventsProcessed.Load()
}

// HasIssueKey returns true if text contains the project key followed by a dash
func (il *IssueLinker) HasIssueKey(text string) bool {
	return strings.Contains(strings.ToUpper(text), il.projectKey+"-")
}

// ExtractIssueID returns the first issue id found in text or an empty string if there's none
func (il *IssueLinker) ExtractIssueID(text string) (id string) {
	if !il.HasIssueKey(text) {
		return ""
	}

	id = il.issuePattern.FindString(strings.ToUpper(text))
	if id == "" {
		il.log.Printf("Jira key found in text but could not extract an issue id from [%s]", text)
	}

	return id
}

// Update posts a link to the issue mentioned in the message, if any
func (il *IssueLinker) Update(e eulerbot.Event) (err error) {
	il.eventsReceived.Add(1)

	channel, text := e.Channel(), e.Text()
	if channel == "" || text == "" {
		return nil
	}

	id := il.ExtractIssueID(text)
	if id == "" {
		return nil
	}

	if il.cooldown != nil && il.cooldown.Contains(id) {
		il.log.Debugf("Issue [%s] was linked recently, skipping it in [%s]", id, channel)
		return nil
	}

	user := e.User()
	if user == "" {
		user = defaultUserName
	}

	message := il.issueMessage(id, user)
	if _, err = il.poster.Post(channel, message); err != nil {
		return errors.Wrapf(err, "failed to post link to issue [%s]", id)
	}

	if il.cooldown != nil {
		il.cooldown.Add(id, struct{}{})
	}

	il.eventsProcessed.Add(1)

	return nil
}

// issueMessage returns the link to the issue or a not found message addressed to user
func (il *IssueLinker) issueMessage(id string, user string) string {
	issue, err := il.finder.Issue(id)
	if err != nil {
		il.log.Printf("Error retrieving issue [%s]: %v", id, err)
	}

	if err != nil || issue == nil {
		return fmt.Sprintf("<@%s>, are you sure %s is a valid Jira issue? I couldn't find it.", user, id)
	}

	summary := ""
	if issue.Fields != nil {
		summary = issue.Fields.Summary
	}

	return fmt.Sprintf("%s <%s|%s>", issue.Key, il.finder.Permalink(issue), summary)
}
