package email

// PreviewData contains sample template data for local preview/testing.
//
//	PreviewData["comment_notification"]["Commenter"] == "Jane"
var PreviewData = map[Template]map[string]string{
	TemplateCommentNotification: {
		"AuthorName": "John",
		"BlogTitle":  "Getting started with Go",
		"Commenter":  "Jane",
		"Comment":    "Great write-up, thanks!",
	},
}
