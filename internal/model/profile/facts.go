package profile

import (
	"fmt"
	"net/url"
	"strings"
)

// Facts flattens the profile into short standalone statements. They form the
// corpus an answering service is allowed to draw from.
func (p Profile) Facts() []string {
	facts := []string{
		fmt.Sprintf("%s is a %s based in %s.", p.Name, p.Role, p.Location),
		p.Summary,
		fmt.Sprintf("Contact email: %s.", p.Email),
	}
	if p.LinkedIn != "" {
		facts = append(facts, fmt.Sprintf("LinkedIn: %s.", p.LinkedIn))
	}
	if p.GitHub != "" {
		facts = append(facts, fmt.Sprintf("GitHub: %s.", p.GitHub))
	}

	if len(p.Skills) > 0 {
		names := make([]string, 0, len(p.Skills))
		for _, skill := range p.Skills {
			names = append(names, skill.Name)
		}
		facts = append(facts, "Skills: "+strings.Join(names, ", ")+".")
	}

	for _, exp := range p.Experience {
		facts = append(facts, fmt.Sprintf("%s at %s (%s, %s): %s", exp.Role, exp.Company, exp.Period, exp.Location, exp.Description))
		for _, highlight := range exp.Highlights {
			facts = append(facts, fmt.Sprintf("As %s: %s.", exp.Role, strings.TrimSuffix(highlight, ".")))
		}
	}

	for _, edu := range p.Education {
		fact := fmt.Sprintf("%s in %s from %s, %s.", edu.Degree, edu.Field, edu.Institution, edu.Year)
		if edu.Honors != "" {
			fact = strings.TrimSuffix(fact, ".") + fmt.Sprintf(" (%s).", edu.Honors)
		}
		facts = append(facts, fact)
	}

	for _, cert := range p.Certifications {
		facts = append(facts, fmt.Sprintf("Certification: %s, issued by %s in %s.", cert.Name, cert.Issuer, cert.Year))
	}

	return facts
}

// ShareLink is one target of the floating share menu.
type ShareLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ShareLinks builds the share targets for pageURL. Clipboard based targets are
// returned with the bare page URL.
func (p Profile) ShareLinks(pageURL string) []ShareLink {
	title := fmt.Sprintf("%s - %s", strings.TrimSuffix(p.Name, ", MBA"), p.Role)
	subject := url.QueryEscape("Check out " + title)
	body := url.QueryEscape("I wanted to share this with you:\n\n" + pageURL)

	return []ShareLink{
		{Name: "LinkedIn", URL: "https://www.linkedin.com/sharing/share-offsite/?url=" + url.QueryEscape(pageURL)},
		{Name: "Email", URL: "mailto:?subject=" + subject + "&body=" + body},
		{Name: "Slack", URL: pageURL},
		{Name: "Copy Link", URL: pageURL},
	}
}
