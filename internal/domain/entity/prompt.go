package entity

import "fmt"

const ansiblePromptTemplate = `Generate a complete Ansible playbook based on the following requirements:

Requirements:
%s

Please provide a well-structured, production-ready Ansible playbook with detailed comments.
Include proper error handling, idempotent tasks, and follow best practices.
`

const dockerPromptTemplate = `Generate a production-ready Dockerfile based on the following requirements:

Requirements:
%s

Please include:
1. Proper base image selection
2. All necessary installation steps
3. Best practices for Docker (multi-stage builds if appropriate, minimizing layers, etc.)
4. Proper environment setup
5. Detailed comments explaining each step
`

const terraformPromptTemplate = `Generate Terraform code (HCL) for the following infrastructure requirements:

Requirements:
%s

The code should:
1. Follow Terraform best practices
2. Include proper variable declarations
3. Use modules where appropriate
4. Include detailed comments
5. Handle dependencies properly
`

// BuildPrompt interpolates the user requirements into the category's fixed
// template. Deterministic: same inputs always produce the same prompt.
func BuildPrompt(c Category, requirements string) string {
	return fmt.Sprintf(c.template(), requirements)
}

func (c Category) template() string {
	switch c {
	case CategoryAnsible:
		return ansiblePromptTemplate
	case CategoryDocker:
		return dockerPromptTemplate
	case CategoryTerraform:
		return terraformPromptTemplate
	}
	panic("unknown category: " + string(c))
}
