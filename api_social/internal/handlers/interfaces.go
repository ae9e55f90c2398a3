package handlers

import (
	"context"

	"stratagix/api_social/internal/accounts"
	"stratagix/api_social/internal/insights"
	"stratagix/pkg/content"
)

type AccountStore interface {
	FindAccount(ctx context.Context, profileID string, platform content.Platform) (accounts.Account, error)
}

type InsightSource interface {
	Instagram(ctx context.Context, acct accounts.Account) (insights.InstagramData, error)
	LinkedIn(ctx context.Context, acct accounts.Account) (insights.LinkedInData, error)
}
