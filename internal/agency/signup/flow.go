// Package signup models the invited-agent onboarding flow as a typed
// state machine: credentials -> code -> success -> profile. The flow only
// validates locally and delegates backend calls to the invite and agent
// services; it exists so a front end (or test) can drive onboarding
// without re-encoding the transition rules.
package signup

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode"

	"github.com/harborview/doorstep/internal/agency/domain"
	"github.com/harborview/doorstep/internal/agency/service"
)

// State identifies a step of the onboarding flow.
type State int

const (
	StateCredentials State = iota
	StateCode
	StateSuccess
	StateProfile
	StateDone
)

func (s State) String() string {
	switch s {
	case StateCredentials:
		return "credentials"
	case StateCode:
		return "code"
	case StateSuccess:
		return "success"
	case StateProfile:
		return "profile"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidTransition reports an event fired from the wrong state.
	ErrInvalidTransition = errors.New("signup: invalid transition")
	// ErrValidation reports local input validation failure; the Notice
	// carries the user-facing text.
	ErrValidation = errors.New("signup: validation failed")
)

// NoticeKind classifies a user-facing banner.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeError
)

// Notice is inline feedback for the current step.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Flow drives one agent through onboarding. It is not safe for concurrent
// use; each signup session owns its own Flow.
type Flow struct {
	Invites *service.InviteService
	Agents  *service.AgentService

	state        State
	email        string
	tempPassword string

	// populated on redemption
	login      *service.LoginResult
	identityID string

	notice *Notice
}

// NewFlow starts a flow at the credentials step.
func NewFlow(invites *service.InviteService, agents *service.AgentService) *Flow {
	return &Flow{Invites: invites, Agents: agents, state: StateCredentials}
}

// State returns the current step.
func (f *Flow) State() State { return f.state }

// Notice returns the pending user-facing notice, if any.
func (f *Flow) Notice() *Notice { return f.notice }

// Login returns the session obtained at redemption, available from the
// success state onward.
func (f *Flow) Login() *service.LoginResult { return f.login }

// SubmitCredentials validates the email and temporary password locally
// and advances credentials -> code. No backend call happens here.
func (f *Flow) SubmitCredentials(email, tempPassword string) error {
	if f.state != StateCredentials {
		return fmt.Errorf("%w: submit credentials from %s", ErrInvalidTransition, f.state)
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		f.notice = &Notice{Kind: NoticeError, Message: "Please enter a valid email address."}
		return ErrValidation
	}
	if len(tempPassword) < service.MinTempPasswordLength {
		f.notice = &Notice{Kind: NoticeError, Message: "The temporary password must be at least 6 characters."}
		return ErrValidation
	}

	f.email = email
	f.tempPassword = tempPassword
	f.state = StateCode
	f.notice = nil
	return nil
}

// Back returns from the code step to credentials. It is the only backward
// transition the flow allows.
func (f *Flow) Back() error {
	if f.state != StateCode {
		return fmt.Errorf("%w: back from %s", ErrInvalidTransition, f.state)
	}
	f.state = StateCredentials
	f.notice = nil
	return nil
}

// SubmitCode redeems the invite with the held credentials plus the code
// and advances code -> success. Redemption failures keep the flow at the
// code step so the user can retry or go back.
func (f *Flow) SubmitCode(ctx context.Context, code string) error {
	if f.state != StateCode {
		return fmt.Errorf("%w: submit code from %s", ErrInvalidTransition, f.state)
	}

	result, err := f.Invites.RedeemInvite(ctx, f.email, f.tempPassword, code)
	if err != nil {
		f.notice = &Notice{Kind: NoticeError, Message: redemptionMessage(err)}
		return err
	}

	f.login = result
	f.identityID = result.IdentityID
	f.state = StateSuccess
	f.notice = &Notice{Kind: NoticeInfo, Message: "Account created. Welcome aboard!"}
	return nil
}

// Advance moves success -> profile on the user's confirmation.
func (f *Flow) Advance() error {
	if f.state != StateSuccess {
		return fmt.Errorf("%w: advance from %s", ErrInvalidTransition, f.state)
	}
	f.state = StateProfile
	f.notice = nil
	return nil
}

// SubmitProfile validates locally, persists the agent profile, and
// finishes the flow. A failed persist keeps the flow at the profile step;
// the upsert under it makes a retry safe.
func (f *Flow) SubmitProfile(ctx context.Context, fullName, phone string) (domain.Agent, error) {
	if f.state != StateProfile {
		return domain.Agent{}, fmt.Errorf("%w: submit profile from %s", ErrInvalidTransition, f.state)
	}

	fullName = strings.TrimSpace(fullName)
	phone = strings.TrimSpace(phone)
	if fullName == "" {
		f.notice = &Notice{Kind: NoticeError, Message: "Please enter your full name."}
		return domain.Agent{}, ErrValidation
	}
	if phone == "" || !allDigits(phone) {
		f.notice = &Notice{Kind: NoticeError, Message: "Please enter a numeric phone number."}
		return domain.Agent{}, ErrValidation
	}

	agent, err := f.Agents.CompleteProfile(ctx, f.identityID, fullName, phone)
	if err != nil {
		f.notice = &Notice{Kind: NoticeError, Message: "Could not save your profile. Please try again."}
		return domain.Agent{}, err
	}

	f.state = StateDone
	f.notice = nil
	return agent, nil
}

func redemptionMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInviteExpired):
		return "This invite code has expired. Ask your manager for a new one."
	case errors.Is(err, service.ErrCodeNotFound), errors.Is(err, service.ErrInvalidEmail):
		return "That code did not match. Check the email, password, and code."
	case errors.Is(err, service.ErrSignupFailed):
		return "An account already exists for this email."
	case errors.Is(err, service.ErrLoginFailed):
		return "Your account was created but sign-in failed. Try signing in directly."
	default:
		return "Something went wrong. Please try again."
	}
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
