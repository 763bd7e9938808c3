package services

import (
	portsevents "github.com/SscSPs/expense_tracker/internal/core/ports/events"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, publisher portsevents.Publisher) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Expense: NewExpenseService(repos.ExpenseRepo, WithEventPublisher(publisher)),
		Health:  NewHealthService(repos.Health),
	}
}

var (
	_ portssvc.ExpenseSvcFacade = (*expenseService)(nil)
	_ portssvc.HealthSvc        = (*healthService)(nil)
)
