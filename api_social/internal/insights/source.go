package insights

import (
	"context"
	"time"

	"stratagix/api_social/internal/accounts"
	"stratagix/pkg/cache"
	"stratagix/pkg/content"
)

// Source fetches analytics for a linked account.
type Source interface {
	Instagram(ctx context.Context, acct accounts.Account) (InstagramData, error)
	LinkedIn(ctx context.Context, acct accounts.Account) (LinkedInData, error)
}

// MockSource serves fixed demo analytics regardless of the account.
type MockSource struct{}

func (MockSource) Instagram(context.Context, accounts.Account) (InstagramData, error) {
	return InstagramData{
		Account:  InstagramAccount{Username: "company_instagram", Followers: 12500, Following: 850, Posts: 342},
		Insights: InstagramInsights{Impressions: 45600, Reach: 32400, ProfileViews: 1240, WebsiteClicks: 380},
		RecentPosts: []InstagramPost{
			{ID: "post1", Type: "image", Caption: "Exciting new product launch coming soon!", Likes: 532, Comments: 48, Saves: 72, Impressions: 4250, Reach: 3890, EngagementRate: 4.2},
			{ID: "post2", Type: "carousel", Caption: "Behind the scenes at our office", Likes: 872, Comments: 103, Saves: 134, Impressions: 7320, Reach: 6540, EngagementRate: 5.8},
			{ID: "post3", Type: "video", Caption: "Our CEO talking about industry trends", Likes: 412, Comments: 89, Saves: 56, Impressions: 3980, Reach: 3540, EngagementRate: 3.9},
		},
	}, nil
}

func (MockSource) LinkedIn(context.Context, accounts.Account) (LinkedInData, error) {
	return LinkedInData{
		Company:   LinkedInCompany{Name: "Company, Inc.", Followers: 8200, Employees: 124, Industry: "Technology"},
		Analytics: LinkedInAnalytics{Impressions: 28700, UniqueVisitors: 12300, Clicks: 1840, EngagementRate: 2.7},
		RecentPosts: []LinkedInPost{
			{ID: "post1", Type: "article", Title: "Industry Insights: The Future of Technology", Reactions: 342, Comments: 78, Shares: 56, Impressions: 5670, Clicks: 430, EngagementRate: 3.8},
			{ID: "post2", Type: "image", Title: "Meet our new leadership team", Reactions: 287, Comments: 42, Shares: 38, Impressions: 4280, Clicks: 310, EngagementRate: 3.2},
			{ID: "post3", Type: "document", Title: "Q2 Market Analysis Report", Reactions: 187, Comments: 31, Shares: 94, Impressions: 3870, Clicks: 520, EngagementRate: 4.1},
		},
		FollowerDemographics: FollowerDemographics{
			Industries: []IndustryShare{
				{Name: "Technology", Percentage: 42},
				{Name: "Marketing and Advertising", Percentage: 18},
				{Name: "Financial Services", Percentage: 12},
				{Name: "Other", Percentage: 28},
			},
			CompanySize: []CompanySizeShare{
				{Size: "1-10", Percentage: 15},
				{Size: "11-50", Percentage: 28},
				{Size: "51-200", Percentage: 22},
				{Size: "201-1000", Percentage: 18},
				{Size: "1001+", Percentage: 17},
			},
			JobFunctions: []JobFunctionShare{
				{Function: "Engineering", Percentage: 32},
				{Function: "Marketing", Percentage: 24},
				{Function: "Operations", Percentage: 18},
				{Function: "Sales", Percentage: 14},
				{Function: "Other", Percentage: 12},
			},
		},
	}, nil
}

// CachedSource memoizes another Source per account for a short TTL.
type CachedSource struct {
	next      Source
	instagram *cache.Cache[InstagramData]
	linkedin  *cache.Cache[LinkedInData]
}

// NewCachedSource wraps next. A non-positive ttl disables caching; observe may be nil.
func NewCachedSource(next Source, ttl time.Duration, observe cache.Observer) *CachedSource {
	opts := cache.Options{TTL: ttl, MaxEntries: 1024}
	return &CachedSource{
		next:      next,
		instagram: cache.New[InstagramData](opts, observe),
		linkedin:  cache.New[LinkedInData](opts, observe),
	}
}

func accountKey(acct accounts.Account, platform content.Platform) string {
	return cache.Key(acct.ProfileID, string(platform), acct.ID)
}

func (s *CachedSource) Instagram(ctx context.Context, acct accounts.Account) (InstagramData, error) {
	return s.instagram.Get(ctx, accountKey(acct, content.PlatformInstagram), func(ctx context.Context, _ string) (InstagramData, error) {
		return s.next.Instagram(ctx, acct)
	})
}

func (s *CachedSource) LinkedIn(ctx context.Context, acct accounts.Account) (LinkedInData, error) {
	return s.linkedin.Get(ctx, accountKey(acct, content.PlatformLinkedIn), func(ctx context.Context, _ string) (LinkedInData, error) {
		return s.next.LinkedIn(ctx, acct)
	})
}
