package domain

import "time"

// Document statuses for uploaded verification evidence. Review itself
// happens outside this service; uploads always start as pending.
const (
	DocumentPending  = "pending"
	DocumentApproved = "approved"
	DocumentRejected = "rejected"
)

// VerificationDocument is an uploaded affiliation proof (student ID card,
// portal screenshot) stored in S3 and tracked here.
type VerificationDocument struct {
	DocumentID string    `json:"id" dynamodbav:"document_id"`
	Email      string    `json:"email" dynamodbav:"email"`
	FlagID     string    `json:"flagId" dynamodbav:"flag_id"`
	Object     string    `json:"-" dynamodbav:"object"`
	Name       string    `json:"name" dynamodbav:"name"`
	Type       string    `json:"type" dynamodbav:"type"`
	Size       int64     `json:"size" dynamodbav:"size"`
	Status     string    `json:"status" dynamodbav:"status"`
	CreatedAt  time.Time `json:"created" dynamodbav:"created_at"`
}
