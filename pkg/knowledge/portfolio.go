package knowledge

// Built-in corpora. The markdown corpus mirrors the public portfolio content;
// the tagged corpus is the plain-text variant with topic tags and weights.

// MarkdownCorpus returns the default markdown knowledge base.
func MarkdownCorpus() *Corpus {
	return &Corpus{
		Name:      "portfolio-markdown",
		Format:    FormatMarkdown,
		Separator: "\n\n---\n\n",
		Fallback:  "I'm the portfolio assistant. I can tell you about my projects, skills, goals, and how to get in touch.",
		FollowUpBroad: `

---

🤔 *Want to know more?*
Try asking about:
- My **projects**
- My **tech stack**
- My **career goals**
`,
		FollowUpNarrow: `

---

👉 *You can also ask about my experience or tools I use.*
`,
		Entries: []Entry{
			{
				ID: "about",
				Text: `### 👋 About Me
I'm **Josh Opsima**, a student developer based in the **Philippines**.
I specialize in **React**, **React Native**, and **full-stack development**.`,
			},
			{
				ID: "projects",
				Text: `### 🚀 Projects
I built **TaraG**, a travel companion app featuring:
- 🗺️ Maps & routing
- ☁️ Weather forecasts
- 👥 Group trips & itineraries
- 🚨 Emergency alerts
- 📡 Offline support

Built with **React Native**, **Firebase**, and **Node.js**.`,
			},
			{
				ID: "skills",
				Text: `### 🛠️ Skills
- **Frontend:** React, TypeScript, Tailwind CSS
- **Mobile:** React Native, Expo
- **Backend:** Node.js, Firebase
- **Design:** UI / UX`,
			},
			{
				ID: "goals",
				Text: `### 🎯 Goals
I'm currently seeking **internship / OJT opportunities**
to gain real-world experience and grow as a software developer.`,
			},
			{
				ID: "contact",
				Text: `### 📬 Contact
You can reach me through:
- 🌐 My portfolio website
- 💼 LinkedIn
- ✉️ Email`,
			},
		},
	}
}

// TaggedCorpus returns the plain-text variant. Tags catch simple
// morphological variants via prefix matching (query token "internship"
// against tag "intern"), so no stemmer is needed.
func TaggedCorpus() *Corpus {
	return &Corpus{
		Name:           "portfolio-tagged",
		Format:         FormatPlainText,
		Separator:      " ",
		Fallback:       "I'm Josh Opsima, a student developer from the Philippines. Ask me about my projects, skills, or goals.",
		FollowUpBroad:  " Want to know more? Try asking about my projects, tech stack, or career goals.",
		FollowUpNarrow: " You can also ask about my experience or the tools I use.",
		Entries: []Entry{
			{
				ID:   "about",
				Text: "I'm Josh Opsima, a student developer based in the Philippines specializing in React, React Native, and full-stack development.",
				Tags: []string{"about", "who", "developer", "philippines"},
			},
			{
				ID:     "projects",
				Text:   "I built TaraG, a travel companion app with maps and routing, weather forecasts, group trips and itineraries, emergency alerts, and offline support. Built with React Native, Firebase, and Node.js.",
				Tags:   []string{"projects", "tarag", "travel", "app"},
				Weight: 1.2,
			},
			{
				ID:   "skills",
				Text: "My skills cover React, TypeScript, and Tailwind CSS on the frontend, React Native and Expo for mobile, Node.js and Firebase on the backend, and UI/UX design.",
				Tags: []string{"skills", "stack", "tech", "tools"},
			},
			{
				ID:     "goals",
				Text:   "I'm currently seeking internship or OJT opportunities to gain real-world experience and grow as a software developer.",
				Tags:   []string{"goals", "intern", "ojt", "career"},
				Weight: 1.1,
			},
			{
				ID:   "contact",
				Text: "You can reach me through my portfolio website, LinkedIn, or email.",
				Tags: []string{"contact", "email", "linkedin", "reach"},
			},
		},
	}
}
