package usecase

import (
	"context"
	"errors"
	"strings"

	"fieldservice-srv/internal/model"
	"fieldservice-srv/internal/workorder"
	"fieldservice-srv/internal/workorder/repository"
)

const (
	minPriority     = 1
	maxPriority     = 5
	defaultPriority = 3
)

// allowedTransitions maps a status to the statuses it may move to.
// COMPLETED and CANCELLED are terminal.
var allowedTransitions = map[string][]string{
	model.WorkOrderStatusOpen: {
		model.WorkOrderStatusAssigned,
		model.WorkOrderStatusCancelled,
	},
	model.WorkOrderStatusAssigned: {
		model.WorkOrderStatusOpen,
		model.WorkOrderStatusInProgress,
		model.WorkOrderStatusCancelled,
	},
	model.WorkOrderStatusInProgress: {
		model.WorkOrderStatusCompleted,
		model.WorkOrderStatusCancelled,
	},
}

func canTransition(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func isValidStatus(status string) bool {
	switch status {
	case model.WorkOrderStatusOpen,
		model.WorkOrderStatusAssigned,
		model.WorkOrderStatusInProgress,
		model.WorkOrderStatusCompleted,
		model.WorkOrderStatusCancelled:
		return true
	}
	return false
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input workorder.ListInput) (workorder.ListOutput, error) {
	page, err := uc.repo.ListWorkOrders(ctx, sc, repository.ListWorkOrdersOptions{
		Params: input.Params,
		Path:   input.Path,
	})
	if err != nil {
		uc.l.Errorf(ctx, "workorder.usecase.List: ListWorkOrders failed: %v", err)
		return workorder.ListOutput{}, err
	}

	return workorder.ListOutput{
		WorkOrders: page.Items,
		Pagination: page.Pagination,
		Path:       page.Path,
	}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, input workorder.DetailInput) (model.WorkOrder, error) {
	wo, err := uc.repo.GetWorkOrderByID(ctx, sc, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.WorkOrder{}, workorder.ErrWorkOrderNotFound
		}
		uc.l.Errorf(ctx, "workorder.usecase.Detail: GetWorkOrderByID failed: %v", err)
		return model.WorkOrder{}, err
	}
	return wo, nil
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input workorder.CreateInput) (model.WorkOrder, error) {
	if strings.TrimSpace(input.Title) == "" {
		return model.WorkOrder{}, workorder.ErrTitleRequired
	}
	if input.Priority == 0 {
		input.Priority = defaultPriority
	}
	if input.Priority < minPriority || input.Priority > maxPriority {
		return model.WorkOrder{}, workorder.ErrInvalidPriority
	}

	exists, err := uc.repo.CustomerExists(ctx, sc, input.CustomerID)
	if err != nil {
		uc.l.Errorf(ctx, "workorder.usecase.Create: CustomerExists failed: %v", err)
		return model.WorkOrder{}, err
	}
	if !exists {
		return model.WorkOrder{}, workorder.ErrCustomerNotFound
	}

	wo, err := uc.repo.CreateWorkOrder(ctx, sc, repository.CreateWorkOrderOptions{
		CustomerID:   input.CustomerID,
		TechnicianID: input.TechnicianID,
		Title:        input.Title,
		Description:  input.Description,
		Priority:     input.Priority,
		ScheduledAt:  input.ScheduledAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "workorder.usecase.Create: CreateWorkOrder failed: %v", err)
		return model.WorkOrder{}, err
	}

	uc.publishEvent(ctx, sc, model.WorkOrderEventCreated, wo)
	return wo, nil
}

func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, input workorder.UpdateStatusInput) (model.WorkOrder, error) {
	if !isValidStatus(input.Status) {
		return model.WorkOrder{}, workorder.ErrInvalidStatus
	}

	current, err := uc.Detail(ctx, sc, workorder.DetailInput{ID: input.ID})
	if err != nil {
		return model.WorkOrder{}, err
	}
	if !canTransition(current.Status, input.Status) {
		return model.WorkOrder{}, workorder.ErrInvalidTransition
	}

	wo, err := uc.repo.UpdateWorkOrderStatus(ctx, sc, repository.UpdateWorkOrderStatusOptions{
		ID:     input.ID,
		Status: input.Status,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.WorkOrder{}, workorder.ErrWorkOrderNotFound
		}
		uc.l.Errorf(ctx, "workorder.usecase.UpdateStatus: UpdateWorkOrderStatus failed: %v", err)
		return model.WorkOrder{}, err
	}

	uc.publishEvent(ctx, sc, model.WorkOrderEventStatusChanged, wo)
	return wo, nil
}

func (uc *implUseCase) Assign(ctx context.Context, sc model.Scope, input workorder.AssignInput) (model.WorkOrder, error) {
	if input.TechnicianID == "" {
		return model.WorkOrder{}, workorder.ErrTechnicianMissing
	}

	current, err := uc.Detail(ctx, sc, workorder.DetailInput{ID: input.ID})
	if err != nil {
		return model.WorkOrder{}, err
	}
	if current.Status != model.WorkOrderStatusOpen && current.Status != model.WorkOrderStatusAssigned {
		return model.WorkOrder{}, workorder.ErrInvalidTransition
	}

	wo, err := uc.repo.AssignWorkOrder(ctx, sc, repository.AssignWorkOrderOptions{
		ID:           input.ID,
		TechnicianID: input.TechnicianID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.WorkOrder{}, workorder.ErrWorkOrderNotFound
		}
		uc.l.Errorf(ctx, "workorder.usecase.Assign: AssignWorkOrder failed: %v", err)
		return model.WorkOrder{}, err
	}

	uc.publishEvent(ctx, sc, model.WorkOrderEventAssigned, wo)
	return wo, nil
}
