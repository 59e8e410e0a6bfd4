package eulerbot

import (
	"github.com/pkg/errors"
	"github.com/slack-go/slack"
)

// userFinder is implemented by any value that can find a slack user by name.
//
// UserDirectory implements this interface
type userFinder interface {
	FindByName(name string) (user slack.User, found bool, err error)
}

// IdentityResolver resolves and caches the bot's own user id. Once found, the id is kept for
// the lifetime of the resolver unless explicitly invalidated
type IdentityResolver struct {
	name   string
	finder userFinder
	log    SLogger
	selfID string
}

// NewIdentityResolver creates a new IdentityResolver for the bot with the given name
func NewIdentityResolver(name string, finder userFinder, logger SLogger) (ir *IdentityResolver) {
	ir = new(IdentityResolver)
	ir.name = name
	ir.finder = finder
	ir.log = logger

	return ir
}

// SelfID returns the bot's user id, looking it up on first use
func (ir *IdentityResolver) SelfID() (id string, err error) {
	if ir.selfID != "" {
		return ir.selfID, nil
	}

	ir.log.Debugf("%s UID is unknown, trying to find", ir.name)
	u, found, err := ir.finder.FindByName(ir.name)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve id of [%s]", ir.name)
	}

	if !found {
		return "", errors.Errorf("no user named [%s] found", ir.name)
	}

	ir.selfID = u.ID
	ir.log.Printf("Resolved %s UID to [%s]", ir.name, ir.selfID)

	return ir.selfID, nil
}

// Invalidate forgets the cached id so that the next call to SelfID looks it up again
func (ir *IdentityResolver) Invalidate() {
	ir.selfID = ""
}
