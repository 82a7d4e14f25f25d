// Package content holds the static copy of the landing page. None of it is
// validated; malformed entries simply render as written.
package content

// Link is a labelled destination.
type Link struct {
	Label string
	Href  string
}

// Accent selects a card tag colour.
type Accent int

const (
	Cyan Accent = iota
	Amber
)

// Project is one card in the projects grid.
type Project struct {
	Num    string
	Title  string
	Desc   string
	Tag    string
	Accent Accent
}

// Article is a piece of published writing.
type Article struct {
	Title   string
	Excerpt string
	Date    string
	Topic   string
	Link    string
}

// Hero is the copy over the animated visual.
type Hero struct {
	Label string
	Sub   string
}

// About is the studio description.
type About struct {
	Heading []string
	Body    []string
}

// Contact is the footer.
type Contact struct {
	Heading  string
	Body     string
	Email    string
	Links    []Link
	Colophon []string
}

// Site is the whole page's copy.
type Site struct {
	Name     string
	Nav      []Link
	Hero     Hero
	Projects []Project
	Featured Article
	Articles []Article
	About    About
	Contact  Contact
}

// Default returns the published content of Max's Lab.
func Default() Site {
	return Site{
		Name: "Max's Lab",
		Nav: []Link{
			{"Projects", "#experiments"},
			{"Writing", "#writing"},
			{"About", "#about"},
			{"Contact", "#contact"},
		},
		Hero: Hero{
			Label: "Field Notes",
			Sub: "Welcome to my learning lab. I'm exploring vibe coding as a creative " +
				"practice and building tools for understanding how data shapes Asian American " +
				"identity, politics, and culture.",
		},
		Projects: projects,
		Featured: Article{
			Title: "Seeing Through Data: A Critical Review of Stop AAPI Hate’s Visual Design Strategies",
			Excerpt: "This article examines the challenges of representing anti-Asian violence through data " +
				"visualization, focusing on Stop AAPI Hate’s Reporting Data Center. This site has become an " +
				"important influence on national discourse and policy. However, its conventional presentation " +
				"methods often reduce the experiences of community members to data points, bar graphs, and " +
				"charts. I argue that data visualization can move beyond reductive formats and instead embrace " +
				"nuance, multiplicity, and emotional resonance. Drawing insight from Mapping Islamophobia, " +
				"Visualizing Palestine, and Periscopic, the article calls for dynamic, empathetic visual " +
				"strategies that deepen our understanding of affected communities.",
			Date:  "2025",
			Topic: "Research",
			Link:  "https://www.tandfonline.com/doi/full/10.1080/00447471.2025.2595899?af=R",
		},
		Articles: articles,
		About: About{
			Heading: []string{"A quiet space for", "building and thinking."},
			Body: []string{
				"Max's Lab is a learning lab. It's where I experiment with vibe coding as a creative " +
					"practice and build tools for thinking about the present, especially where data meets " +
					"Asian American politics and culture.",
				"My work lives between AI, social science, and design. I'm drawn to questions of " +
					"visibility and meaning: how systems shape identity, how interfaces frame experience, " +
					"and how people encounter the technologies that increasingly organize everyday life.",
				"There are no products here. Just fieldwork in code, data, and culture.",
			},
		},
		Contact: Contact{
			Heading: "Contact:",
			Body:    "I occasionally share work on social platforms. For general inquiries, email is best.",
			Email:   "hello@maxlab.studio",
			Links: []Link{
				{"GitHub", "https://github.com"},
				{"LinkedIn", "https://linkedin.com"},
				{"Faculty Webpage", "#"},
			},
			Colophon: []string{"Built by Maxwell Leung, Ph.D. · 2026", "Designed with intention."},
		},
	}
}

var projects = []Project{
	{"001", "Asian Foods Inflation Tracker",
		"Interactive visualization of price trends across U.S. metro areas, mapping inflation data against demographic patterns.",
		"Data Viz", Cyan},
	{"002", "Narrative Drift Engine",
		"An experimental text generator that models how stories diverge across retellings using transformer attention maps.",
		"AI / NLP", Amber},
	{"003", "Census Pulse Dashboard",
		"Real-time exploration of U.S. Census Bureau microdata with dynamic filtering and geographic breakdowns.",
		"Data Viz", Cyan},
	{"004", "Latent Space Gallery",
		"Walk through the embedding space of a vision model. Drag to navigate, click to decode — see what the machine sees.",
		"AI / Vision", Amber},
	{"005", "Policy Simulator",
		"Agent-based model simulating the downstream effects of housing policy changes on neighborhood composition.",
		"Simulation", Cyan},
	{"006", "Typographic Rhythm",
		"A study in motion typography — letterforms responding to audio input in real time using the Web Audio API.",
		"Creative", Amber},
}

var articles = []Article{
	{
		Title: "Points of Departure: Re-Examining the Discursive Formation of the Hate Crime Statistics Act of 1990",
		Excerpt: "This article re-examines the political and legislative history of the debates that led up to " +
			"the passage of the 1990 Hate Crime Statistics Act, in particular the 1980 House committee hearing on " +
			"Increasing Violence against Minorities and a 1983 U.S. Commission on Civil Rights report entitled " +
			"Intimidation and Violence: Racial and Religious Bigotry in America. Both identify organized white " +
			"supremacy as the cause of the nation’s epidemic of racial intimidation and violent bigotry in the late " +
			"1970s and early 1980s. Many significant recommendations were made, but data collection became the " +
			"first piece of legislation to address the national problem of hate violence. Leung seeks to explain " +
			"why. By analysing the relationship between committee hearings, the key report and the political " +
			"context of the Reagan administration, he demonstrates how ‘hate crime’ became an object of " +
			"knowledge, and how its definition had implications for policy development.",
		Date: "Jan 2018",
		Link: "https://www.tandfonline.com/doi/abs/10.1080/0031322X.2018.1429357",
	},
	{
		Title: "Jeremy Lin's Model Minority Problem",
		Excerpt: "In 2012, an Asian American, Ivy-League educated basketball player captured the country's " +
			"attention: what was it that made Jeremy Lin so exceptional, from his race to his physical and " +
			"mental prowess to his athletic masculinity. In short: what led to the rise and fall of Linsanity? " +
			"Will it have a legacy?",
		Date: "Aug 2013",
		Link: "https://journals.sagepub.com/doi/10.1177/1536504213499879",
	},
}
