package main

// Render a sample resume with every template:
//   go run ./cmd/renderdemo -out ./out
// Pass -pdf to also print the exportable ones through headless Chrome.

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"resume-builder/internal/exports"
	"resume-builder/internal/resume"
	"resume-builder/internal/templates"
)

func main() {
	outDir := flag.String("out", "./out", "output directory")
	withPDF := flag.Bool("pdf", false, "also print exportable templates to PDF")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir failed: %v\n", err)
		os.Exit(1)
	}

	data := sampleResume()
	var renderer exports.Renderer
	if *withPDF {
		renderer = exports.NewChromedpRenderer(os.Getenv("CHROME_PATH"))
	}

	for _, tpl := range templates.All() {
		screen, err := templates.RenderScreen(tpl.ID, data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render %s failed: %v\n", tpl.ID, err)
			os.Exit(1)
		}
		screenPath := filepath.Join(*outDir, string(tpl.ID)+"_screen.html")
		if err := os.WriteFile(screenPath, []byte(screen), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
			os.Exit(1)
		}

		if !tpl.Exportable() {
			continue
		}
		doc, err := templates.RenderDocument(tpl.ID, data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render document %s failed: %v\n", tpl.ID, err)
			os.Exit(1)
		}
		docPath := filepath.Join(*outDir, string(tpl.ID)+"_document.html")
		if err := os.WriteFile(docPath, []byte(doc), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
			os.Exit(1)
		}

		if renderer != nil {
			pdf, err := renderer.RenderHTMLToPDF(context.Background(), doc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "print %s failed: %v\n", tpl.ID, err)
				os.Exit(1)
			}
			pdfPath := filepath.Join(*outDir, string(tpl.ID)+".pdf")
			if err := os.WriteFile(pdfPath, pdf, 0o644); err != nil {
				fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
				os.Exit(1)
			}
		}
	}

	fmt.Printf("OK: wrote %d templates to %s\n", len(templates.All()), *outDir)
}

func sampleResume() resume.ResumeData {
	d := resume.Default()
	d.FirstName = "Jordan"
	d.LastName = "Lee"
	d.Email = "jordan.lee@example.com"
	d.Phone = "+1-555-0102"
	d.Location = "Austin, TX"
	d.JobTitle = "Senior Backend Engineer"
	d.Summary = "Backend engineer with 8+ years of experience building resilient APIs and data services."
	d.Website = "jordanlee.dev"
	d.LinkedIn = "linkedin.com/in/jordanlee"
	d.GitHub = "github.com/jordanlee"
	d.Experience = []resume.Experience{
		{
			ID:        "exp-1",
			Company:   "Streamline Analytics",
			Position:  "Senior Backend Engineer",
			StartDate: "2021-03",
			Current:   true,
			Description: "Own the ingestion platform handling 2B events/day. " +
				"Cut p99 API latency from 900ms to 120ms.",
		},
		{
			ID:          "exp-2",
			Company:     "CloudWorks",
			Position:    "Backend Engineer",
			StartDate:   "2017-06",
			EndDate:     "2021-02",
			Description: "Built the billing service and led the migration from a monolith to services.",
		},
	}
	d.Education = []resume.Education{
		{
			ID:          "edu-1",
			School:      "University of Texas at Austin",
			Degree:      "BSc Computer Science",
			StartDate:   "2013-09",
			EndDate:     "2017-05",
			Description: "Focus on distributed systems.",
		},
	}
	d.AddSkill("Go", "Expert")
	d.AddSkill("PostgreSQL", "Advanced")
	d.AddSkill("Redis", "Advanced")
	d.AddSkill("Kubernetes", "Intermediate")
	d.Projects = []resume.Project{
		{
			ID:          "prj-1",
			Name:        "queuebench",
			Description: "Benchmark harness for comparing message broker throughput.",
			CodeURL:     "github.com/jordanlee/queuebench",
			Tags:        []string{"go", "benchmarking"},
		},
	}
	d.Certifications = []resume.Certification{
		{ID: "cert-1", Name: "AWS Solutions Architect Associate", Year: "2022"},
	}
	return d
}
