package dto

type UserStats struct {
	TotalUsers  int `json:"totalUsers"`
	NewUsers30d int `json:"newUsers30d"`
	NewUsers7d  int `json:"newUsers7d"`
	AdminUsers  int `json:"adminUsers"`
}

type ContentStats struct {
	TotalProducts    int `json:"totalProducts"`
	FeaturedProducts int `json:"featuredProducts"`
	TotalBlogPosts   int `json:"totalBlogPosts"`
	PublishedPosts   int `json:"publishedPosts"`
	TotalServices    int `json:"totalServices"`
	TotalPartners    int `json:"totalPartners"`
}

type ContactStats struct {
	TotalContacts  int `json:"totalContacts"`
	Contacts30d    int `json:"contacts30d"`
	UnreadContacts int `json:"unreadContacts"`
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Posts    int    `json:"posts"`
}

type AnalyticsResponse struct {
	UserStats       UserStats       `json:"userStats"`
	ContentStats    ContentStats    `json:"contentStats"`
	ContactStats    ContactStats    `json:"contactStats"`
	MonthlyUsers    []MonthlyCount  `json:"monthlyUsers"`
	MonthlyContacts []MonthlyCount  `json:"monthlyContacts"`
	BlogByCategory  []CategoryCount `json:"blogByCategory"`
}
