package storefront

import (
	"context"
	"errors"

	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

// Login validates the form, verifies the credentials and opens a session
// for the registered e-mail casing.
func (p *Page) Login(ctx context.Context, form validator.LoginForm) (AuthState, error) {
	if err := p.alive(); err != nil {
		return AuthState{}, err
	}

	form, err := validator.Login(form)
	if err != nil {
		return AuthState{}, err
	}

	subject, err := p.accounts.Authenticate(ctx, form.Email, form.Password)
	if err != nil {
		p.logger.InfoContext(ctx, "login rejected", logger.Error(err))
		return AuthState{}, err
	}

	if _, err := p.sessions.Create(ctx, subject); err != nil {
		return AuthState{}, err
	}
	p.monitor.Start(p.lifetime)

	ctx = logger.ContextWithSubject(ctx, subject)
	p.logger.InfoContext(ctx, "logged in")
	return p.AuthState(ctx), nil
}

// Signup registers an account and logs it in. If the session cannot be
// created the new account is removed again.
func (p *Page) Signup(ctx context.Context, form validator.SignupForm) (AuthState, error) {
	if err := p.alive(); err != nil {
		return AuthState{}, err
	}

	form, err := validator.Signup(form)
	if err != nil {
		return AuthState{}, err
	}

	acc, err := p.accounts.Register(ctx, form.Email, form.Name, form.Password)
	if err != nil {
		p.logger.InfoContext(ctx, "signup rejected", logger.Error(err))
		return AuthState{}, err
	}

	if _, err := p.sessions.Create(ctx, acc.Email); err != nil {
		if rbErr := p.accounts.Delete(ctx, acc.Email); rbErr != nil {
			p.logger.ErrorContext(ctx, "failed to roll back account", logger.Subject(acc.Email), logger.Error(rbErr))
			err = errors.Join(err, rbErr)
		}
		return AuthState{}, err
	}
	p.monitor.Start(p.lifetime)

	ctx = logger.ContextWithSubject(ctx, acc.Email)
	p.logger.InfoContext(ctx, "account created and logged in")
	return p.AuthState(ctx), nil
}

// Logout ends the session. The termination hooks stop the monitor and
// empty the cart.
func (p *Page) Logout(ctx context.Context) error {
	return p.sessions.Terminate(ctx)
}

func (p *Page) alive() error {
	if p.lifetime.Err() != nil {
		return ErrPageClosed
	}
	return nil
}
