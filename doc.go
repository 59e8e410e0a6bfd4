/*
Package eulerbot provides the core of a slack bot listening to the real time messaging firehose.

Every message event read from slack is classified as one of three categories:
  - Direct: the message was sent on a direct message channel with the bot
  - Mention: the message @mentions the bot
  - Channel: any other message

and passed on to the responders registered for its category, in order of registration. A responder
failing (or panicking) is logged and never prevents the other responders from getting the event.

Responders needing access to slack (to post a reply or look up users) are created with the
BotServices injected by the builder:
  - Poster: To send messages
  - Directory: To query users and direct message channels
  - Identity: To get the bot's own user id
  - Config: The full configuration
  - Log: To log debug/info statements

Example code:

	package main

	import (
		"github.com/eulerbot/eulerbot"
		"github.com/eulerbot/eulerbot/config"
		"github.com/eulerbot/eulerbot/integrations"
		"log"
	)

	func main() {
		v, err := config.NewViperFromEnv()
		if err != nil {
			log.Fatal(err)
		}

		bot, err := eulerbot.NewBot(v).
			WithConfigurableResponderErr(eulerbot.Channel, integrations.NewJiraIssueLinker).
			WithResponder(eulerbot.Direct, eulerbot.ResponderFunc(func(e eulerbot.Event) error {
				log.Printf("Got a direct message: %s", e.Text())
				return nil
			})).
			Build()
		if err != nil {
			log.Fatal(err)
		}
		defer bot.Close()

		if err = bot.Run(); err != nil {
			log.Fatal(err)
		}
	}
*/
package eulerbot
