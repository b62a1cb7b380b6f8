// Package lib holds integrations that do not belong to a single layer:
// background job processing (Asynq on Redis) and the email client (Resend).
package lib
