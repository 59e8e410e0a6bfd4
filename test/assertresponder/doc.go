// Package assertresponder provides testing functions to validate a responder's overall functionality.
// This package is designed to play well but not require the assertpost package for validation
// of posted messages
//
// The asserter drives a responder the way eulerbot does: the responder is created with bot services
// backed by a post captor, the message is classified with the asserter's bot user id and direct message
// channels and the responder is only updated if the message falls in the category it's registered for.
// Users should take special care to include <@botUserID> with the same botUserID with which the
// asserter has been instantiated in the message text inputs to test mentions (or use one of the
// direct message channels given with OptionDirectMessages for direct message testing)
//
// Example:
//    func TestResponder(t *testing.T) {
//        asserter := assertresponder.New("BOT")
//
//        asserter.Posts(t, eulerbot.Mention, newResponder, eulerbot.Event{"type": "message", "channel": "C1", "text": "<@BOT> are you up?"}, func(t *testing.T, posts map[string][]string, err error) bool {
//            return assert.NoError(t, err) && assertpost.HasText(t, posts, "C1", "I'm 😴, you?")
//        })
//    }
package assertresponder // import "github.com/eulerbot/eulerbot/test/assertresponder"
