package domain

// Creative is the copy and landing page shown for a campaign.
type Creative struct {
	Headline    string `json:"headline"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	AssetURL    string `json:"assetUrl,omitempty"`
}
