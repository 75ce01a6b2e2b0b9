package config

// DefaultThresholds returns the stock cutoffs.
func DefaultThresholds() ThresholdsConf {
	return ThresholdsConf{
		OldAccountYears:     5,
		StalePasswordYears:  2,
		InactiveYears:       2,
		PasswordWarningDays: 365,
		InactiveWarningDays: 730,
	}
}

// DefaultCategories returns the built-in classification table. Table order
// is the tie-break when a service name would match more than one category.
func DefaultCategories() []CategoryConf {
	return []CategoryConf{
		{
			Name:    "Banking",
			Needles: []string{"bank", "chase", "hdfc", "icici", "citi", "paypal", "wells", "barclays"},
		},
		{
			Name:    "E-Commerce",
			Needles: []string{"amazon", "flipkart", "ebay", "etsy", "walmart", "aliexpress", "myntra", "shop"},
		},
		{
			Name:    "Social",
			Needles: []string{"facebook", "twitter", "instagram", "reddit", "linkedin", "snapchat", "tiktok", "pinterest"},
		},
		{
			Name:    "Email",
			Needles: []string{"gmail", "outlook", "yahoo", "proton", "zoho", "mail"},
		},
		{
			Name:    "Entertainment",
			Needles: []string{"netflix", "spotify", "hulu", "prime", "disney", "youtube", "steam", "twitch"},
		},
		{
			Name:    "Work",
			Needles: []string{"slack", "jira", "github", "gitlab", "notion", "zoom", "asana", "confluence"},
		},
		{
			Name:    "Cloud",
			Needles: []string{"aws", "azure", "gcp", "dropbox", "drive", "icloud", "digitalocean", "heroku"},
		},
	}
}
