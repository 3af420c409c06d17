package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
)

// maxTechStackEntries caps how many languages the tech stack lists.
const maxTechStackEntries = 6

// scriptDescriptions maps recognised script names to human descriptions.
// Unknown names fall back to the raw script command.
var scriptDescriptions = map[string]string{
	"dev":    "Start development server",
	"start":  "Start production server",
	"build":  "Build for production",
	"test":   "Run tests",
	"lint":   "Run linting",
	"format": "Format code",
}

// recognisedScripts are the script names the installation section lists,
// in this fixed order.
var recognisedScripts = []string{"dev", "start", "build", "test"}

func renderHeader(p *domain.RepositoryProfile, _ domain.Template) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	if p.Description != "" {
		b.WriteString(p.Description + "\n\n")
	}
	return b.String()
}

func renderShields(p *domain.RepositoryProfile, _ domain.Template) string {
	return strings.Join(buildShields(p), " ") + "\n\n"
}

func includeFeatures(p *domain.RepositoryProfile, _ domain.Template) bool {
	return len(p.Capabilities) > 0
}

func renderFeatures(p *domain.RepositoryProfile, _ domain.Template) string {
	var b strings.Builder
	b.WriteString("## ✨ Features\n\n")
	for _, capability := range p.Capabilities {
		fmt.Fprintf(&b, "- ✅ %s\n", capability)
	}
	b.WriteString("\n")
	return b.String()
}

func includeTechStack(p *domain.RepositoryProfile, _ domain.Template) bool {
	return len(p.LanguageByteCounts) > 1
}

// rankedLanguages returns the top language entries sorted by byte count
// descending, alphabetical on ties for deterministic output.
func rankedLanguages(counts map[string]int64, limit int) []struct {
	Name  string
	Bytes int64
} {
	entries := make([]struct {
		Name  string
		Bytes int64
	}, 0, len(counts))
	for name, bytes := range counts {
		entries = append(entries, struct {
			Name  string
			Bytes int64
		}{name, bytes})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Bytes != entries[j].Bytes {
			return entries[i].Bytes > entries[j].Bytes
		}
		return entries[i].Name < entries[j].Name
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func renderTechStack(p *domain.RepositoryProfile, _ domain.Template) string {
	entries := rankedLanguages(p.LanguageByteCounts, maxTechStackEntries)

	var total int64
	for _, e := range entries {
		total += e.Bytes
	}

	var b strings.Builder
	b.WriteString("## 🛠️ Tech Stack\n\n")
	for _, e := range entries {
		// Percentage is of the rendered subset, not the full language map.
		percent := float64(e.Bytes) / float64(total) * 100
		fmt.Fprintf(&b, "- **%s** (%.1f%%)\n", e.Name, percent)
	}
	b.WriteString("\n")
	return b.String()
}

// packageManager picks the install command by lockfile precedence:
// pnpm beats yarn beats the npm default.
func packageManager(p *domain.RepositoryProfile) string {
	if p.HasRootEntry("pnpm-lock.yaml") {
		return "pnpm"
	}
	if p.HasRootEntry("yarn.lock") {
		return "yarn"
	}
	return "npm"
}

func renderInstallation(p *domain.RepositoryProfile, _ domain.Template) string {
	var b strings.Builder
	b.WriteString("## 🚀 Installation\n\n")

	fmt.Fprintf(&b, "1. Clone the repository:\n```bash\ngit clone %s\ncd %s\n```\n\n",
		p.CanonicalURL, p.Name)

	if len(p.Dependencies) > 0 {
		fmt.Fprintf(&b, "2. Install dependencies:\n```bash\n%s install\n```\n\n",
			packageManager(p))
	}

	if p.HasRootEntry(".env.example") {
		b.WriteString("3. Set up environment variables:\n```bash\ncp .env.example .env\n# Edit .env with your configuration\n```\n\n")
	}

	var available []string
	for _, name := range recognisedScripts {
		if _, ok := p.Scripts[name]; ok {
			available = append(available, name)
		}
	}
	if len(available) > 0 {
		b.WriteString("4. Available scripts:\n")
		for _, name := range available {
			description, ok := scriptDescriptions[name]
			if !ok {
				description = p.Scripts[name]
			}
			fmt.Fprintf(&b, "- `npm run %s` - %s\n", name, description)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// capitalize upper-cases the first byte of a repository name for use as a
// component identifier in examples.
func capitalize(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// usageFenceLanguage picks the code-fence tag for the generic usage example.
// Falls back to the top-ranked language when no primary language is set.
func usageFenceLanguage(p *domain.RepositoryProfile) string {
	if p.PrimaryLanguage != "" {
		return strings.ToLower(p.PrimaryLanguage)
	}
	if ranked := rankedLanguages(p.LanguageByteCounts, 1); len(ranked) > 0 {
		return strings.ToLower(ranked[0].Name)
	}
	return "text"
}

func renderUsage(p *domain.RepositoryProfile, _ domain.Template) string {
	var b strings.Builder
	b.WriteString("## 📖 Usage\n\n")

	// Exactly one example block, chosen by priority:
	// UI framework > HTTP server > Python > generic fallback.
	switch {
	case p.HasCapability(domain.CapabilityReactApp):
		component := capitalize(p.Name)
		fmt.Fprintf(&b, "### React Application\n\n```jsx\nimport React from 'react';\nimport { %s } from './%s';\n\nfunction App() {\n  return (\n    <div>\n      <%s />\n    </div>\n  );\n}\n\nexport default App;\n```\n\n",
			component, p.Name, component)
	case p.HasCapability(domain.CapabilityExpressServer):
		fmt.Fprintf(&b, "### Server Usage\n\n```javascript\nconst express = require('express');\nconst app = express();\n\napp.get('/', (req, res) => {\n  res.json({ message: 'Hello from %s!' });\n});\n\napp.listen(3000, () => {\n  console.log('Server running on port 3000');\n});\n```\n\n",
			p.Name)
	case p.PrimaryLanguage == "Python":
		module := strings.ReplaceAll(p.Name, "-", "_")
		fmt.Fprintf(&b, "### Python Usage\n\n```python\nfrom %s import main\n\nif __name__ == \"__main__\":\n    main()\n```\n\n",
			module)
	default:
		fmt.Fprintf(&b, "### Basic Usage\n\n```%s\n// Add your usage example here\nconsole.log('Hello from %s!');\n```\n\n",
			usageFenceLanguage(p), p.Name)
	}

	return b.String()
}

func includeAPIReference(_ *domain.RepositoryProfile, t domain.Template) bool {
	switch t {
	case domain.TemplateComprehensive, domain.TemplateOpenSource, domain.TemplateEnterprise:
		return true
	default:
		return false
	}
}

func renderAPIReference(p *domain.RepositoryProfile, _ domain.Template) string {
	var b strings.Builder
	b.WriteString("## 📚 API Reference\n\n")

	// Server and UI stubs are independent; both may appear.
	if p.HasCapability(domain.CapabilityExpressServer) {
		b.WriteString("### REST Endpoints\n\n")
		b.WriteString("#### GET /\n- **Description**: Health check endpoint\n- **Response**: `{ \"status\": \"ok\" }`\n\n")
		b.WriteString("#### GET /api/data\n- **Description**: Get application data\n- **Response**: `{ \"data\": [...] }`\n\n")
	}

	if p.HasCapability(domain.CapabilityReactApp) {
		component := capitalize(p.Name)
		b.WriteString("### Components\n\n")
		fmt.Fprintf(&b, "#### Main Component\n\n```jsx\n<%s\n  prop1=\"value\"\n  prop2={true}\n  onEvent={handleEvent}\n/>\n```\n\n",
			component)
		b.WriteString("**Props:**\n- `prop1` (string): Description of prop1\n- `prop2` (boolean): Description of prop2\n- `onEvent` (function): Event handler\n\n")
	}

	return b.String()
}

func includeTesting(p *domain.RepositoryProfile, t domain.Template) bool {
	if t == domain.TemplateMinimal {
		return false
	}
	return p.HasCapability(domain.CapabilityUnitTesting) ||
		p.HasCapability(domain.CapabilityE2ETesting)
}

func renderTesting(p *domain.RepositoryProfile, _ domain.Template) string {
	var b strings.Builder
	b.WriteString("## 🧪 Testing\n\n")

	if p.HasCapability(domain.CapabilityUnitTesting) {
		b.WriteString("### Unit Tests\n\n```bash\nnpm run test\n```\n\n")
	}
	if p.HasCapability(domain.CapabilityE2ETesting) {
		b.WriteString("### E2E Tests\n\n```bash\nnpm run test:e2e\n```\n\n")
	}

	// Coverage subsection accompanies the section unconditionally.
	b.WriteString("### Coverage\n\n```bash\nnpm run test:coverage\n```\n\n")

	return b.String()
}

func includeDeployment(_ *domain.RepositoryProfile, t domain.Template) bool {
	return t != domain.TemplateMinimal
}

func renderDeployment(p *domain.RepositoryProfile, _ domain.Template) string {
	var b strings.Builder
	b.WriteString("## 🚀 Deployment\n\n")

	// Subsections gate independently; zero, one or several may appear.
	if p.HasCapability(domain.CapabilityDockerSupport) {
		fmt.Fprintf(&b, "### Docker\n\n```bash\n# Build image\ndocker build -t %s .\n\n# Run container\ndocker run -p 3000:3000 %s\n```\n\n",
			p.Name, p.Name)
	}
	if p.HasCapability(domain.CapabilityNextFramework) {
		b.WriteString("### Vercel\n\n```bash\nnpm i -g vercel\nvercel --prod\n```\n\n")
	}
	if p.HasCapability(domain.CapabilityReactApp) {
		b.WriteString("### Netlify\n\n1. Build the project: `npm run build`\n2. Deploy the `build` folder to Netlify\n\n")
	}

	return b.String()
}

func includeContributing(_ *domain.RepositoryProfile, t domain.Template) bool {
	switch t {
	case domain.TemplateOpenSource, domain.TemplateComprehensive, domain.TemplateEnterprise:
		return true
	default:
		return false
	}
}

func renderContributing(_ *domain.RepositoryProfile, _ domain.Template) string {
	return "## 🤝 Contributing\n\n" +
		"Contributions are welcome! Please feel free to submit a Pull Request.\n\n" +
		"### Development Process\n\n" +
		"1. Fork the repository\n" +
		"2. Create your feature branch (`git checkout -b feature/amazing-feature`)\n" +
		"3. Commit your changes (`git commit -m 'Add some amazing feature'`)\n" +
		"4. Push to the branch (`git push origin feature/amazing-feature`)\n" +
		"5. Open a Pull Request\n\n" +
		"### Code Style\n\n" +
		"- Follow the existing code style\n" +
		"- Run tests before submitting\n" +
		"- Update documentation as needed\n\n"
}

func includeEnterprise(_ *domain.RepositoryProfile, t domain.Template) bool {
	return t == domain.TemplateEnterprise
}

func renderEnterprise(_ *domain.RepositoryProfile, _ domain.Template) string {
	return "## 🔒 Security\n\n" +
		"For security vulnerabilities, please email security@company.com instead of using the issue tracker.\n\n" +
		"## 📋 Compliance\n\n" +
		"This project adheres to:\n" +
		"- Company coding standards\n" +
		"- Security best practices\n" +
		"- Data protection regulations (GDPR, CCPA)\n" +
		"- Industry compliance requirements\n\n" +
		"## 🏢 Enterprise Support\n\n" +
		"For enterprise support and custom solutions:\n" +
		"- Email: enterprise@company.com\n" +
		"- Phone: +1 (555) 123-4567\n" +
		"- Documentation: [Enterprise Docs](https://docs.company.com)\n\n" +
		"## 🔍 Monitoring & Analytics\n\n" +
		"- Application monitoring with DataDog\n" +
		"- Error tracking with Sentry\n" +
		"- Performance monitoring enabled\n" +
		"- Audit logging compliant\n\n"
}

func includeLicense(p *domain.RepositoryProfile, _ domain.Template) bool {
	return p.HasLicense
}

func renderLicense(p *domain.RepositoryProfile, _ domain.Template) string {
	name := p.LicenseName
	if name == "" {
		name = "Custom License"
	}
	return fmt.Sprintf(
		"## 📄 License\n\nThis project is licensed under the %s - see the [LICENSE](LICENSE) file for details.\n\n",
		name)
}

func renderFooter(_ *domain.RepositoryProfile, _ domain.Template) string {
	return "---\n\n" +
		"⭐ **Don't forget to star this project if you found it helpful!**\n\n" +
		"📝 *README generated with [readmegen](https://github.com/custodia-labs/readmegen-cli)*\n"
}
