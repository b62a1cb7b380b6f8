package email

import "context"

// SendCommentNotificationEmail tells a blog author that someone commented on their post.
func (c *Client) SendCommentNotificationEmail(ctx context.Context, to, authorName, blogTitle, commenter, comment string) error {
	data := map[string]string{
		"AuthorName": authorName,
		"BlogTitle":  blogTitle,
		"Commenter":  commenter,
		"Comment":    comment,
	}

	return c.SendEmail(
		ctx,
		to,
		"New comment on "+blogTitle,
		TemplateCommentNotification,
		data,
	)
}
