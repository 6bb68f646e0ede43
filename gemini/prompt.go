package gemini

import (
	"fmt"
	"strings"

	"github.com/fwojciec/adgen"
)

// briefSources holds the mode-dependent phrases of the brief prompt.
type briefSources struct {
	method string // how the model should gather information
	source string // where the information came from
}

func newBriefSources(req adgen.BriefRequest) briefSources {
	if req.WebsiteOnly {
		return briefSources{
			method: "analyze the content found directly on the website " + req.URL,
			source: "from the website " + req.URL,
		}
	}
	return briefSources{
		method: "use your Google Search tool to find information about the website " + req.URL,
		source: "via Google Search for " + req.URL,
	}
}

func (s briefSources) missing(section string) string {
	return "Could not determine " + section + " " + s.source + "."
}

// briefSections lists the brief sections after the services block, with the
// name used in their "Could not determine" fallback.
var briefSections = []struct {
	title   string
	task    string
	missing string
}{
	{"Target Geographic Location(s):", "Describe based on your findings. If the service is national or global without a local focus, say so.", "specific target geographic locations"},
	{"Target Audience Profile(s):", "Describe one primary persona (demographics, psychographics, needs, pain points, what they value most). Describe a second persona only if one is clearly evident.", "Persona 1 details"},
	{"Primary Keywords (High Intent):", "List high-intent keywords, one per line with a \"- \" prefix.", "primary keywords"},
	{"Unique Selling Propositions (USPs) / Core Differentiators:", "List 1-3 USPs, one per line with a \"- \" prefix.", "USPs"},
	{"Competitive Landscape (Optional but Recommended):", "Briefly mention 1-2 competitors and a key differentiator.", "competitive landscape"},
	{"Desired Call-to-Action (CTA):", "State the most prominent call to action.", "primary CTA"},
	{"Brand Voice / Tone:", "Describe the brand voice or tone (e.g., Authoritative & Innovative, Reliable & Empathetic) and justify it briefly.", "brand voice/tone"},
	{"Any Current Promotions/Offers:", "Describe current promotions or offers, or state that none were found.", "current promotions/offers"},
	{"Implicit Negative Intents to Avoid:", "Suggest 1-2 keyword intents the website should avoid targeting (e.g., 'free' for a premium service).", "implicit negative intents"},
}

// BuildBriefPrompt builds the prompt for the marketing brief. Pages, when
// given, are embedded so the model can work from the site's own content.
func BuildBriefPrompt(req adgen.BriefRequest, pages []*adgen.Page) string {
	src := newBriefSources(req)

	var sb strings.Builder
	fmt.Fprintf(&sb, "IMPORTANT: You MUST generate the complete marketing brief structure outlined below. "+
		"For every section, provide the requested information based on your analysis of the website %s. "+
		"If, after attempting to %s, you cannot find specific information for a section, you MUST write '%s' within that section. "+
		"DO NOT return an empty response or omit sections.\n\n",
		req.URL, src.method, src.missing("[section name]"))

	fmt.Fprintf(&sb, "You are an expert marketing strategist. Your mission is to analyze the website at the URL %q and generate a comprehensive Marketing Brief. "+
		"For each section below, you will %s to find the relevant information.\n", req.URL, src.method)

	if len(req.Services) > 0 {
		fmt.Fprintf(&sb, "\nIMPORTANT USER FOCUS: The user has specifically requested to focus on the following products/services: %q. "+
			"Prioritize these in \"Specific Services/Product Lines to Feature\" and consider how they influence the overall strategy.\n",
			strings.Join(req.Services, ", "))
	}

	if len(pages) > 0 {
		sb.WriteString("\nWEBSITE CONTENT:\n<pages>\n")
		for i, p := range pages {
			sb.WriteString("<page>\n")
			fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
			fmt.Fprintf(&sb, "<url>%s</url>\n", p.URL)
			if p.Title != "" {
				fmt.Fprintf(&sb, "<title>%s</title>\n", p.Title)
			}
			if p.Description != "" {
				fmt.Fprintf(&sb, "<description>%s</description>\n", p.Description)
			}
			fmt.Fprintf(&sb, "<content>%s</content>\n", p.Content)
			sb.WriteString("</page>\n")
		}
		sb.WriteString("</pages>\n")
	}

	fmt.Fprintf(&sb, "\nMarketing Brief for Website: %s\n\n", req.URL)

	writeBriefSection(&sb, src, "Business Name:", "State the business name.", "Business Name")
	writeBriefSection(&sb, src, "Campaign Goal:", "Explain your choice briefly based on your findings.", "primary campaign goal")
	writeBriefSection(&sb, src, "Overall Product/Service Category:", "Describe the category.", "overall product/service category")
	writeServicesSection(&sb, req, src)
	for _, s := range briefSections {
		writeBriefSection(&sb, src, s.title, s.task, s.missing)
	}

	return strings.TrimRight(sb.String(), "\n")
}

func writeBriefSection(sb *strings.Builder, src briefSources, title, task, missing string) {
	fmt.Fprintf(sb, "%s\n(To determine this, %s. %s If not determinable, state '%s')\n\n", title, src.method, task, src.missing(missing))
}

// writeServicesSection writes the services block. User-specified services
// are listed one per line for the model to confirm and describe.
func writeServicesSection(sb *strings.Builder, req adgen.BriefRequest, src briefSources) {
	sb.WriteString("Specific Services/Product Lines to Feature:\n")

	if len(req.Services) == 0 {
		fmt.Fprintf(sb, "(To determine this, %s to identify its key specific services or product lines. "+
			"List all clearly identifiable and distinct services/products with concise descriptions.)\n", src.method)
		fmt.Fprintf(sb, "Service/Product 1: [Concise description identified %s, or '%s']\n", src.source, src.missing("specific service 1"))
		fmt.Fprintf(sb, "Service/Product 2: [Concise description identified %s, or '%s']\n", src.source, src.missing("specific service 2"))
		fmt.Fprintf(sb, "(Continue listing Service/Product 3, Service/Product 4, etc., if clearly identifiable and distinct %s)\n\n", src.source)
		return
	}

	fmt.Fprintf(sb, "For each \"User Specified\" line below, analyze %s to confirm and describe it. "+
		"If it cannot be verified, state 'User-specified service \"<name>\" could not be verified/detailed %s'. "+
		"You MAY then list up to 2-3 additional distinct services found %s, continuing the numbering.\n", req.URL, src.source, src.source)
	for i, service := range req.Services {
		safe := strings.NewReplacer("[", "", "]", "").Replace(service)
		fmt.Fprintf(sb, "Service/Product %d (User Specified: %s): [Concise description of %q %s]\n", i+1, safe, safe, src.source)
	}
	sb.WriteString("\n")
}

// BuildAdCopyPrompt builds the prompt that turns a marketing brief into ad
// assets. The output format it requests is the one adgen.Parse understands.
func BuildAdCopyPrompt(brief string) string {
	var sb strings.Builder
	sb.WriteString("You are the world's unparalleled Google Ads copywriter.\n")
	sb.WriteString("Your mission is to generate Google Ads assets based on the following Marketing Brief.\n\n")
	sb.WriteString("MARKETING BRIEF:\n---\n")
	sb.WriteString(strings.TrimSpace(brief))
	sb.WriteString("\n---\n\n")
	sb.WriteString(adCopyInstructions)
	return sb.String()
}

const adCopyInstructions = `INSTRUCTIONS:
1.  **Ad Copy Variations:**
    * Count the distinct services (N) in "Specific Services/Product Lines to Feature" that have actual descriptions (not "Could not determine..." or "could not be verified/detailed").
    * Generate exactly N "AD COPY VARIATION" blocks. If N is 0, generate one general variation based on "Overall Product/Service Category" and "Business Name".
    * Title each block "AD COPY VARIATION [i] (Service Focus: [Service Name]):", or "AD COPY VARIATION 1 (General Focus):" for a general variation.
    * If the brief names specific locations in "Target Geographic Location(s):", work them naturally into a subset of headlines and descriptions.
    * You MUST include the label "Headlines:" followed by EXACTLY 25 distinct headlines, each STRICTLY 30 characters or less, one per line with a "- " prefix.
    * You MUST include the label "Descriptions:" followed by EXACTLY 10 distinct descriptions, each STRICTLY 90 characters or less, one per line with a "- " prefix.
    * Use the brief's primary keywords, CTA and USPs where available. Follow Google Ads policies: relevance, clarity, benefit-centric copy, no gimmicks.

2.  **Sitelinks (4-6 variations):**
    * Sitelink Text STRICTLY 25 characters or less; Description Line 1 and 2 STRICTLY 35 characters or less each.
    * Format:
        SITELINKS:
        - Sitelink Text: [Text]
          Description Line 1: [Text]
          Description Line 2: [Text]

3.  **Structured Snippets (2-3 distinct headers):**
    * Choose headers such as Services, Types, Brands, Destinations, Models, Courses or Styles, with 3-5 values each, every value STRICTLY 25 characters or less.
    * Format:
        STRUCTURED SNIPPETS:
        Header: [Chosen Header]
        - [Value 1]
        - [Value 2]
        - [Value 3]

4.  **Callouts (4-6 variations):**
    * Highlight key benefits, USPs or offers, each STRICTLY 25 characters or less.
    * Format:
        CALLOUTS:
        - [Callout Text 1]
        - [Callout Text 2]

If the brief has insufficient detail for a section, provide generic assets based on the business name and category.
Output all sections clearly separated.
STRICTLY ADHERE TO THE "- " PREFIX FOR LISTS OF HEADLINES, DESCRIPTIONS, SITELINKS, STRUCTURED SNIPPET VALUES, AND CALLOUTS. NO OTHER NUMBERS OR BULLETS.`
