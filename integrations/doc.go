// Package integrations provides the responders eulerbot ships with: the jira issue linker
// and the channel support responder that points people asking for help to the engineer
// currently on call.
//
// Responders are created from the eulerbot.BotServices and registered with the builder:
//
//	bot, err := eulerbot.NewBot(v).
//		WithConfigurableResponderErr(eulerbot.Channel, integrations.NewJiraIssueLinker).
//		WithConfigurableResponderErr(eulerbot.Channel, integrations.NewOpsGenieChannelSupport).
//		Build()
package integrations
