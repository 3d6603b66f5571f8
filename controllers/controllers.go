package controllers

import (
	"github.com/Rohitsengar02/CivicConnect/repositories"
)

var (
	issueRepo repositories.IssueRepository
	adminRepo repositories.AdminRepository
)

// InitRepositories wires the storage implementations the handlers use.
// main injects the Mongo-backed repositories; tests inject fakes.
func InitRepositories(issues repositories.IssueRepository, admins repositories.AdminRepository) {
	issueRepo = issues
	adminRepo = admins
}
