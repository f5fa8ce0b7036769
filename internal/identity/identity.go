package identity

import (
	"context"
	"ticketee/internal/model"
	apperrors "ticketee/pkg/app_errors"
)

// Provider 取得目前登入的使用者
type Provider interface {
	// 未登入時回傳 apperrors.ErrUnauthenticated
	CurrentPrincipal(ctx context.Context) (*model.Principal, error)
}

type ctxKey struct{}

// WithPrincipal 將使用者放入 context，由 auth middleware 呼叫
func WithPrincipal(ctx context.Context, p *model.Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func PrincipalFrom(ctx context.Context) (*model.Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(*model.Principal)
	return p, ok && p != nil
}

// ContextProvider 從 request context 取得使用者
type ContextProvider struct{}

func NewContextProvider() Provider {
	return ContextProvider{}
}

func (ContextProvider) CurrentPrincipal(ctx context.Context) (*model.Principal, error) {
	p, ok := PrincipalFrom(ctx)
	if !ok {
		return nil, apperrors.ErrUnauthenticated
	}
	return p, nil
}
