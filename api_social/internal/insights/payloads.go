// Package insights produces the platform analytics snapshots served to the dashboard.
package insights

type InstagramAccount struct {
	Username  string `json:"username"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
	Posts     int    `json:"posts"`
}

type InstagramInsights struct {
	Impressions   int `json:"impressions"`
	Reach         int `json:"reach"`
	ProfileViews  int `json:"profileViews"`
	WebsiteClicks int `json:"websiteClicks"`
}

type InstagramPost struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	Caption        string  `json:"caption"`
	Likes          int     `json:"likes"`
	Comments       int     `json:"comments"`
	Saves          int     `json:"saves"`
	Impressions    int     `json:"impressions"`
	Reach          int     `json:"reach"`
	EngagementRate float64 `json:"engagement_rate"`
}

// InstagramData is the get-instagram-data response body.
type InstagramData struct {
	Account     InstagramAccount  `json:"account"`
	Insights    InstagramInsights `json:"insights"`
	RecentPosts []InstagramPost   `json:"recentPosts"`
}

type LinkedInCompany struct {
	Name      string `json:"name"`
	Followers int    `json:"followers"`
	Employees int    `json:"employees"`
	Industry  string `json:"industry"`
}

type LinkedInAnalytics struct {
	Impressions    int     `json:"impressions"`
	UniqueVisitors int     `json:"uniqueVisitors"`
	Clicks         int     `json:"clicks"`
	EngagementRate float64 `json:"engagementRate"`
}

type LinkedInPost struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	Title          string  `json:"title"`
	Reactions      int     `json:"reactions"`
	Comments       int     `json:"comments"`
	Shares         int     `json:"shares"`
	Impressions    int     `json:"impressions"`
	Clicks         int     `json:"clicks"`
	EngagementRate float64 `json:"engagement_rate"`
}

type IndustryShare struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

type CompanySizeShare struct {
	Size       string `json:"size"`
	Percentage int    `json:"percentage"`
}

type JobFunctionShare struct {
	Function   string `json:"function"`
	Percentage int    `json:"percentage"`
}

type FollowerDemographics struct {
	Industries   []IndustryShare    `json:"industries"`
	CompanySize  []CompanySizeShare `json:"companySize"`
	JobFunctions []JobFunctionShare `json:"jobFunctions"`
}

// LinkedInData is the get-linkedin-data response body.
type LinkedInData struct {
	Company              LinkedInCompany      `json:"company"`
	Analytics            LinkedInAnalytics    `json:"analytics"`
	RecentPosts          []LinkedInPost       `json:"recentPosts"`
	FollowerDemographics FollowerDemographics `json:"followerDemographics"`
}
