package portfolio

// Project is one portfolio case study as listed in the dataset.
type Project struct {
	Slug             string      `json:"slug"`
	Name             string      `json:"name,omitempty"`
	Subtitle         string      `json:"subtitle,omitempty"`
	Status           string      `json:"status,omitempty"`
	Role             string      `json:"role,omitempty"`
	Team             bool        `json:"team,omitempty"`
	Tag              string      `json:"tag,omitempty"`
	Overview         string      `json:"overview,omitempty"`
	CardDescription  string      `json:"cardDescription,omitempty"`
	Responsibilities []string    `json:"responsibilities,omitempty"`
	Tools            []string    `json:"tools,omitempty"`
	Challenges       []string    `json:"challenges,omitempty"`
	Solutions        []string    `json:"solutions,omitempty"`
	Results          []string    `json:"results,omitempty"`
	Timeline         []Milestone `json:"timeline,omitempty"`
	Links            []Link      `json:"links,omitempty"`
	Gallery          Gallery     `json:"gallery"`
}

// Milestone is a timeline entry.
type Milestone struct {
	Label  string `json:"label,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// Link is an outbound or in-site link shown as a button.
type Link struct {
	Label string `json:"label,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Image is a gallery image; Src is relative to the site root.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

// Gallery holds a project's ordered images.
type Gallery struct {
	Images []Image `json:"images,omitempty"`
}

// DisplayName is the name shown for p, falling back to the slug.
func (p Project) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Slug
}

// dataset is the top-level document shape.
type dataset struct {
	Projects []Project `json:"projects"`
}
