package models

type TransitionRequest struct {
	Status       ContactStatus `json:"status" example:"RETURN_SCHEDULED" swagger:"required" description:"Novo status do contato"`
	ReminderDate string        `json:"reminderDate,omitempty" example:"2024-02-01" description:"Data de retorno (YYYY-MM-DD), usada apenas com RETURN_SCHEDULED"`
}

type FieldEditRequest struct {
	ContactName *string `json:"contactName,omitempty" description:"Nome do responsável"`
	Role        *string `json:"role,omitempty" description:"Cargo"`
	Department  *string `json:"department,omitempty" description:"Departamento"`
	Email       *string `json:"email,omitempty" description:"E-mail"`
	Notes       *string `json:"notes,omitempty" description:"Observações"`
}

type ColumnsConfigRequest struct {
	Columns []Column `json:"columns" swagger:"required" description:"Configuração completa das colunas do quadro"`
}

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Total    int `json:"total"`
}
