package provider

import (
	"context"
	"time"

	"stratagix/pkg/content"
	"stratagix/pkg/trends"
)

// Memory serves a fixed in-process data set.
type Memory struct {
	items   []content.Item
	entries []trends.Entry
}

// NewMemory returns a provider over the built-in seed data.
func NewMemory() *Memory {
	return NewMemoryWith(SeedContent(), SeedTrends())
}

// NewMemoryWith returns a provider over the given data.
func NewMemoryWith(items []content.Item, entries []trends.Entry) *Memory {
	return &Memory{
		items:   append([]content.Item(nil), items...),
		entries: append([]trends.Entry(nil), entries...),
	}
}

func (m *Memory) ListContentItems(context.Context) ([]content.Item, error) {
	return append([]content.Item(nil), m.items...), nil
}

func (m *Memory) ListTrendEntries(context.Context) ([]trends.Entry, error) {
	return append([]trends.Entry(nil), m.entries...), nil
}

// SeedContent is the planner's demo schedule for May 2025.
func SeedContent() []content.Item {
	may := func(day int) content.Date { return content.MustDate(2025, time.May, day) }
	return []content.Item{
		{ID: "1", Title: "Product Launch Announcement", Type: content.TypeImage, Date: may(10), Time: "10:00 AM", Platform: content.PlatformInstagram, Status: content.StatusScheduled},
		{ID: "2", Title: "Industry Insights Article", Type: content.TypeArticle, Date: may(12), Time: "2:00 PM", Platform: content.PlatformLinkedIn, Status: content.StatusScheduled},
		{ID: "3", Title: "Team Culture Video", Type: content.TypeVideo, Date: may(15), Time: "4:30 PM", Platform: content.PlatformBoth, Status: content.StatusDraft},
		{ID: "4", Title: "Customer Testimonial", Type: content.TypeImage, Date: may(18), Time: "1:15 PM", Platform: content.PlatformInstagram, Status: content.StatusScheduled},
		{ID: "5", Title: "Product Demo", Type: content.TypeVideo, Date: may(20), Time: "11:00 AM", Platform: content.PlatformBoth, Status: content.StatusDraft},
	}
}

// SeedTrends is the demo trend catalog.
func SeedTrends() []trends.Entry {
	return []trends.Entry{
		{
			ID:          "1",
			Title:       "Sustainable Business Practices",
			Category:    trends.CategoryBusiness,
			Platform:    content.PlatformLinkedIn,
			Relevance:   95,
			Growth:      42,
			Momentum:    trends.MomentumRising,
			Description: "Companies showcasing their sustainability initiatives and eco-friendly practices are seeing significant engagement.",
			Hashtags:    []string{"#Sustainability", "#GreenBusiness", "#ClimateAction"},
			Examples:    []trends.Example{{Title: "Our Journey to Carbon Neutrality", Engagement: 3245, Platform: content.PlatformLinkedIn}},
		},
		{
			ID:          "2",
			Title:       "Behind-the-Scenes Content",
			Category:    trends.CategoryContent,
			Platform:    content.PlatformInstagram,
			Relevance:   88,
			Growth:      35,
			Momentum:    trends.MomentumRising,
			Description: "Authentic behind-the-scenes content showing company culture and product development is driving higher engagement.",
			Hashtags:    []string{"#BTS", "#CompanyCulture", "#MeetTheTeam"},
			Examples:    []trends.Example{{Title: "A Day in the Life of Our Design Team", Engagement: 2876, Platform: content.PlatformInstagram}},
		},
		{
			ID:          "3",
			Title:       "Data Visualization",
			Category:    trends.CategoryContent,
			Platform:    content.PlatformBoth,
			Relevance:   82,
			Growth:      28,
			Momentum:    trends.MomentumStable,
			Description: "Creative data visualization and infographics explaining complex concepts are performing well across platforms.",
			Hashtags:    []string{"#DataViz", "#Infographic", "#DataStorytelling"},
			Examples:    []trends.Example{{Title: "Global Market Trends Visualized", Engagement: 2145, Platform: content.PlatformLinkedIn}},
		},
		{
			ID:          "4",
			Title:       "User-Generated Content",
			Category:    trends.CategoryStrategy,
			Platform:    content.PlatformInstagram,
			Relevance:   90,
			Growth:      38,
			Momentum:    trends.MomentumRising,
			Description: "Brands featuring content created by their customers and followers are seeing higher trust and engagement metrics.",
			Hashtags:    []string{"#UGC", "#CustomerStories", "#CommunitySpotlight"},
			Examples:    []trends.Example{{Title: "Customer Spotlight Series", Engagement: 3012, Platform: content.PlatformInstagram}},
		},
		{
			ID:          "5",
			Title:       "AI & Future of Work",
			Category:    trends.CategoryIndustry,
			Platform:    content.PlatformLinkedIn,
			Relevance:   93,
			Growth:      45,
			Momentum:    trends.MomentumRising,
			Description: "Content discussing how AI is transforming industries and the future of work is driving significant engagement.",
			Hashtags:    []string{"#AIinBusiness", "#FutureOfWork", "#DigitalTransformation"},
			Examples:    []trends.Example{{Title: "How We're Implementing AI to Improve Customer Experience", Engagement: 3542, Platform: content.PlatformLinkedIn}},
		},
	}
}
