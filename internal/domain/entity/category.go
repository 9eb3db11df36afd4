package entity

import "fmt"

// Category is the closed set of code-generation targets.
type Category string

const (
	CategoryAnsible   Category = "ansible"
	CategoryDocker    Category = "docker"
	CategoryTerraform Category = "terraform"
)

// Categories returns all recognized categories in display order.
func Categories() []Category {
	return []Category{CategoryAnsible, CategoryDocker, CategoryTerraform}
}

// ParseCategory validates a category tag coming from the API boundary.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryAnsible, CategoryDocker, CategoryTerraform:
		return c, nil
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

// Extension returns the artifact file extension for the category.
func (c Category) Extension() string {
	switch c {
	case CategoryAnsible:
		return "yml"
	case CategoryDocker:
		return "Dockerfile"
	case CategoryTerraform:
		return "tf"
	}
	panic("unknown category: " + string(c))
}

// FileName returns the download artifact name, e.g. "docker_generated.Dockerfile".
func (c Category) FileName() string {
	return fmt.Sprintf("%s_generated.%s", string(c), c.Extension())
}

// Caption is the short description shown next to the category selector.
func (c Category) Caption() string {
	switch c {
	case CategoryAnsible:
		return "Automation with Ansible Playbooks"
	case CategoryDocker:
		return "Container configurations with Dockerfile"
	case CategoryTerraform:
		return "Infrastructure as Code with Terraform"
	}
	panic("unknown category: " + string(c))
}

// UsageHint tells the user what to do with the downloaded artifact.
func (c Category) UsageHint() string {
	switch c {
	case CategoryAnsible:
		return "To use this Ansible playbook, save it as a .yml file and run it with `ansible-playbook filename.yml`"
	case CategoryDocker:
		return "To build this Docker image, save as 'Dockerfile' and run `docker build -t your-image-name .`"
	case CategoryTerraform:
		return "To use this Terraform code, save it as main.tf, run `terraform init` followed by `terraform apply`"
	}
	panic("unknown category: " + string(c))
}

// Placeholder is an example requirement shown in the input field.
func (c Category) Placeholder() string {
	switch c {
	case CategoryAnsible:
		return "E.g., Set up a web server with Nginx and deploy a Node.js application..."
	case CategoryDocker:
		return "E.g., Create a container for a Python Flask application with Redis..."
	case CategoryTerraform:
		return "E.g., Create an AWS infrastructure with a VPC, 2 EC2 instances, and an RDS database..."
	}
	panic("unknown category: " + string(c))
}
