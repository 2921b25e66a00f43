package service

import "context"

// Auditor resolves the user recorded in created_by / updated_by columns.
type Auditor interface {
	CurrentActor(ctx context.Context) *int64
}

type anonymousAuditor struct{}

// NewAnonymousAuditor returns an auditor that never knows the actor.
func NewAnonymousAuditor() Auditor {
	return anonymousAuditor{}
}

func (anonymousAuditor) CurrentActor(context.Context) *int64 { return nil }

func auditorOrAnonymous(a Auditor) Auditor {
	if a == nil {
		return anonymousAuditor{}
	}
	return a
}
