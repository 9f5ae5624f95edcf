package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// assumptionsMarkdown is the plain-language overview of the model
// assumptions shown on the dashboard, with the sources they came from.
const assumptionsMarkdown = `# Model Assumptions

**Plain-language overview**

- **How contagious (R₀):** If one student gets measles, they could infect about **12** others in a fully susceptible group (PubMed, PMID 28757186).
- **MMR coverage:** The share of students already protected. Lower coverage means more students at risk. Data: ADHS 2024–25 kindergarten coverage (schools with 20 or more kindergarteners).
- **Hospitalizations:** We assume **20%** of infections need hospital care (NFID).
- **Deaths:** Very rare but not zero. We use **0.03%** of infections (UChicago Medicine).
- **Isolation:** A student with measles stays home **4 days after rash** starts (AAC R9-6-355).
- **Quarantine:** Un/under-vaccinated exposed students stay home **21 days** after last exposure (ADHS).
- **Outbreak pattern (simplified):** Cases grow, peak, and fall as fewer susceptible students remain. The 90-day curve is a stylized shape scaled to the projected total, not a day-by-day transmission simulation.

**Educational disclaimer:** This simulator is for education and planning
only. It simplifies real-world public health dynamics and assumes no
additional interventions (targeted vaccination, masking, closures). For
real-time guidance, consult ADHS and your local health authority.
`

// handleAssumptions renders the assumptions page as HTML.
// GET /api/assumptions (use ?format=md for the raw markdown)
func (s *Server) handleAssumptions(c *gin.Context) {
	if c.Query("format") == "md" {
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(assumptionsMarkdown))
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	rendered := markdown.ToHTML([]byte(assumptionsMarkdown), p, renderer)

	c.Data(http.StatusOK, "text/html; charset=utf-8", rendered)
}
