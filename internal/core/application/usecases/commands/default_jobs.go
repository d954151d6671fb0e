package commands

import (
	"hiring/internal/core/domain/model/job"
)

// defaultJob is one of the sample listings inserted into an empty store.
type defaultJob struct {
	details    job.Details
	applicants int
}

// DefaultJobs returns the sample listings in insertion order.
func DefaultJobs() []job.Details {
	out := make([]job.Details, 0, len(defaultJobs))
	for _, d := range defaultJobs {
		out = append(out, d.details)
	}
	return out
}

var defaultJobs = []defaultJob{
	{
		details: job.Details{
			Title:          "Senior Frontend Developer",
			Department:     "Engineering",
			Location:       "Bangalore / Remote",
			EmploymentType: "Full-time",
			Experience:     "5+ years",
			Salary:         "8 LPA - 12 LPA",
			Category:       "engineering",
			Description: "Build amazing user interfaces and help shape the future of our platform. " +
				"Work with cutting-edge technologies and collaborate with world-class engineers.",
			Requirements: "React, TypeScript, Node.js, 5+ years experience",
			Posted:       true,
			Featured:     true,
		},
		applicants: 45,
	},
	{
		details: job.Details{
			Title:          "Product Manager",
			Department:     "Product",
			Location:       "Hyderabad / Hybrid",
			EmploymentType: "Full-time",
			Experience:     "3-5 years",
			Salary:         "6 LPA - 9 LPA",
			Category:       "product",
			Description: "Drive product strategy and work with cross-functional teams to deliver " +
				"exceptional products that users love.",
			Requirements: "Product strategy, Data analysis, Leadership, 3+ years experience",
			Posted:       true,
			Featured:     true,
		},
		applicants: 32,
	},
	{
		details: job.Details{
			Title:          "Backend Engineer",
			Department:     "Engineering",
			Location:       "Pune",
			EmploymentType: "Full-time",
			Experience:     "3-5 years",
			Salary:         "7 LPA - 10 LPA",
			Category:       "engineering",
			Description:    "Design and implement scalable backend systems and APIs that power our platform.",
			Requirements:   "Java, Spring Boot, Microservices, 3+ years experience",
			Posted:         true,
			Featured:       false,
		},
		applicants: 28,
	},
	{
		details: job.Details{
			Title:          "UX Designer",
			Department:     "Design",
			Location:       "Bangalore",
			EmploymentType: "Full-time",
			Experience:     "2-4 years",
			Salary:         "5 LPA - 7 LPA",
			Category:       "design",
			Description:    "Create beautiful and intuitive user experiences that delight our users.",
			Requirements:   "Figma, User research, Prototyping, 2+ years experience",
			Posted:         true,
			Featured:       false,
		},
		applicants: 19,
	},
	{
		details: job.Details{
			Title:          "Data Scientist",
			Department:     "Data",
			Location:       "Remote / Pune",
			EmploymentType: "Full-time",
			Experience:     "4-6 years",
			Salary:         "6 LPA - 8 LPA",
			Category:       "data",
			Description:    "Apply machine learning and statistical analysis to solve complex business problems.",
			Requirements:   "Python, Machine Learning, Statistics, 4+ years experience",
			Posted:         true,
			Featured:       true,
		},
		applicants: 52,
	},
}
