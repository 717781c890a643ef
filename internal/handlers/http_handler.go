package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"agenda-crm/internal/models"
	"agenda-crm/internal/repositories"
	"agenda-crm/internal/services"
	"agenda-crm/internal/utils"

	"github.com/gorilla/mux"
)

// HTTPHandler é a casca da aplicação: dona da coleção canônica de contatos
// e da configuração de colunas. Toda mutação passa pelos motores de regra e
// termina com a gravação da coleção inteira no armazenamento. Falha de
// gravação não desfaz o estado em memória; o usuário continua trabalhando
// com estado divergente e recebe um aviso.
type HTTPHandler struct {
	store    repositories.Store
	engine   *services.TransitionEngine
	importer *services.Importer

	mu       sync.RWMutex
	contacts []models.Contact
	columns  []models.Column
}

func NewHTTPHandler(store repositories.Store) (*HTTPHandler, error) {
	contacts, err := store.LoadContacts()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar contatos: %v", err)
	}

	columns, err := store.LoadColumns()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração de colunas: %v", err)
	}

	return &HTTPHandler{
		store:    store,
		engine:   services.NewTransitionEngine(),
		importer: services.NewImporter(),
		contacts: contacts,
		columns:  columns,
	}, nil
}

// filteredContacts aplica busca e filtro rápido sobre uma cópia da coleção.
// Chamar com o lock de leitura adquirido.
func (h *HTTPHandler) filteredContacts(r *http.Request) []models.Contact {
	result := make([]models.Contact, len(h.contacts))
	copy(result, h.contacts)

	if q := r.URL.Query().Get("q"); q != "" {
		result = services.FilterContacts(result, q)
	}
	if r.URL.Query().Get("filter") == "returns-today" {
		result = services.DueToday(result, time.Now())
	}
	return result
}

// @Summary List contacts
// @Description Lista os contatos, com busca de texto livre e filtro de retornos do dia
// @Tags contacts
// @Produce json
// @Param q query string false "Busca (órgão, responsável, cidade, UF, âmbito)"
// @Param filter query string false "Filtro rápido: returns-today"
// @Success 200 {object} models.APIResponse
// @Router /contacts [get]
func (h *HTTPHandler) GetContacts(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	contacts := h.filteredContacts(r)
	pending := len(services.DueToday(h.contacts, time.Now()))
	h.mu.RUnlock()

	data := map[string]interface{}{
		"contacts":       contacts,
		"pendingReturns": pending,
	}
	models.RespondWithJSON(w, http.StatusOK,
		models.NewSuccessResponse("Contatos carregados", data))
}

// @Summary Kanban board
// @Description Contatos agrupados nas colunas configuradas, ordenados por órgão
// @Tags board
// @Produce json
// @Param q query string false "Busca"
// @Param filter query string false "Filtro rápido: returns-today"
// @Success 200 {object} models.APIResponse
// @Router /board [get]
func (h *HTTPHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	board := services.GroupByColumns(h.filteredContacts(r), h.columns)
	h.mu.RUnlock()

	models.RespondWithJSON(w, http.StatusOK,
		models.NewSuccessResponse("Quadro montado", board))
}

// @Summary Directory grouped by scope
// @Description Diretório lateral: contatos agrupados por âmbito
// @Tags board
// @Produce json
// @Param q query string false "Busca"
// @Success 200 {object} models.APIResponse
// @Router /directory [get]
func (h *HTTPHandler) GetDirectory(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	groups := services.GroupByScope(h.filteredContacts(r))
	h.mu.RUnlock()

	models.RespondWithJSON(w, http.StatusOK,
		models.NewSuccessResponse("Diretório montado", groups))
}

// @Summary Register an action on a contact
// @Description Move o contato para o novo status aplicando as regras de transição
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "ID do contato"
// @Param request body models.TransitionRequest true "Novo status e data de retorno opcional"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /contacts/{id}/transition [post]
func (h *HTTPHandler) TransitionContact(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogError("Erro ao decodificar requisição /transition: %v", err)
		models.RespondWithJSON(w, http.StatusBadRequest,
			models.NewErrorResponse("Erro ao decodificar requisição: "+err.Error()))
		return
	}

	if !req.Status.IsValid() {
		models.RespondWithJSON(w, http.StatusBadRequest,
			models.NewErrorResponse(fmt.Sprintf("Status inválido: %s", req.Status)))
		return
	}

	var reminder *time.Time
	if req.ReminderDate != "" {
		parsed, err := parseDate(req.ReminderDate)
		if err != nil {
			models.RespondWithJSON(w, http.StatusBadRequest,
				models.NewErrorResponse("Data de retorno inválida: "+req.ReminderDate))
			return
		}
		reminder = &parsed
	}

	h.mu.Lock()
	idx := h.findContact(id)
	if idx < 0 {
		h.mu.Unlock()
		models.RespondWithJSON(w, http.StatusNotFound,
			models.NewErrorResponse("Contato não encontrado"))
		return
	}

	h.contacts[idx] = h.engine.ApplyTransition(h.contacts[idx], req.Status, reminder)
	updated := h.contacts[idx]
	saveErr := h.store.SaveContacts(h.contacts)
	h.mu.Unlock()

	h.respondAfterSave(w, "Ação registrada", updated, saveErr)
}

// @Summary Edit contact detail fields
// @Description Atualiza responsável, cargo, departamento, e-mail e observações sem mudar o status
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "ID do contato"
// @Param request body models.FieldEditRequest true "Campos a sobrepor"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /contacts/{id} [put]
func (h *HTTPHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.FieldEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogError("Erro ao decodificar requisição de edição: %v", err)
		models.RespondWithJSON(w, http.StatusBadRequest,
			models.NewErrorResponse("Erro ao decodificar requisição: "+err.Error()))
		return
	}

	edit := services.FieldEdit{
		ContactName: req.ContactName,
		Role:        req.Role,
		Department:  req.Department,
		Email:       req.Email,
		Notes:       req.Notes,
	}

	h.mu.Lock()
	idx := h.findContact(id)
	if idx < 0 {
		h.mu.Unlock()
		models.RespondWithJSON(w, http.StatusNotFound,
			models.NewErrorResponse("Contato não encontrado"))
		return
	}

	h.contacts[idx] = h.engine.ApplyFieldEdit(h.contacts[idx], edit)
	updated := h.contacts[idx]
	saveErr := h.store.SaveContacts(h.contacts)
	h.mu.Unlock()

	h.respondAfterSave(w, "Dados salvos", updated, saveErr)
}

// @Summary Import a spreadsheet
// @Description Importa contatos de uma planilha (xlsx ou csv); telefones já existentes são ignorados
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Planilha a importar"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Router /import [post]
func (h *HTTPHandler) ImportContacts(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.LogError("Arquivo muito grande em /import: %v", err)
		models.RespondWithJSON(w, http.StatusBadRequest,
			models.NewErrorResponse("Arquivo muito grande. Limite de 10MB"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.LogError("Erro ao processar arquivo em /import: %v", err)
		models.RespondWithJSON(w, http.StatusBadRequest,
			models.NewErrorResponse("Erro ao processar arquivo"))
		return
	}
	defer file.Close()

	rows, err := services.ParseImportFile(header.Filename, file)
	if err != nil {
		utils.LogError("Erro ao ler planilha em /import: %v", err)
		models.RespondWithJSON(w, http.StatusBadRequest,
			models.NewErrorResponse("Erro ao importar planilha. Verifique o formato."))
		return
	}

	mapped, err := h.importer.MapRows(rows)
	if err != nil {
		if errors.Is(err, services.ErrEmptySheet) {
			models.RespondWithJSON(w, http.StatusBadRequest,
				models.NewErrorResponse("Planilha vazia"))
			return
		}
		utils.LogError("Erro ao mapear planilha em /import: %v", err)
		models.RespondWithJSON(w, http.StatusBadRequest,
			models.NewErrorResponse("Erro ao importar planilha. Verifique o formato."))
		return
	}

	h.mu.Lock()
	unique := services.FilterNewByPhone(mapped, h.contacts)
	h.contacts = append(h.contacts, unique...)
	saveErr := h.store.SaveContacts(h.contacts)
	total := len(h.contacts)
	h.mu.Unlock()

	result := models.ImportResult{
		Imported: len(unique),
		Skipped:  len(mapped) - len(unique),
		Total:    total,
	}
	utils.LogInfo("Importação concluída: %d novos, %d ignorados", result.Imported, result.Skipped)
	h.respondAfterSave(w, fmt.Sprintf("%d contatos importados com sucesso!", result.Imported), result, saveErr)
}

// @Summary Export contacts to a spreadsheet
// @Description Gera o backup completo ou o relatório diário em xlsx
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param period query string false "today para o relatório diário; padrão exporta tudo"
// @Success 200 {file} file
// @Failure 400 {object} models.APIResponse
// @Router /export [get]
func (h *HTTPHandler) ExportContacts(w http.ResponseWriter, r *http.Request) {
	onlyToday := r.URL.Query().Get("period") == "today"

	h.mu.RLock()
	contacts := make([]models.Contact, len(h.contacts))
	copy(contacts, h.contacts)
	columns := make([]models.Column, len(h.columns))
	copy(columns, h.columns)
	h.mu.RUnlock()

	f, fileName, err := services.ExportContacts(contacts, columns, onlyToday, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrNothingToExport) {
			models.RespondWithJSON(w, http.StatusBadRequest,
				models.NewErrorResponse("Nenhum contato foi trabalhado hoje para gerar o relatório."))
			return
		}
		utils.LogError("Erro ao exportar em /export: %v", err)
		models.RespondWithJSON(w, http.StatusInternalServerError,
			models.NewErrorResponse("Erro ao exportar arquivo."))
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	if err := f.Write(w); err != nil {
		utils.LogError("Erro ao enviar arquivo exportado: %v", err)
	}
}

// @Summary Board columns configuration
// @Tags settings
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /columns [get]
func (h *HTTPHandler) GetColumns(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	columns := make([]models.Column, len(h.columns))
	copy(columns, h.columns)
	h.mu.RUnlock()

	models.RespondWithJSON(w, http.StatusOK,
		models.NewSuccessResponse("Configuração carregada", columns))
}

// @Summary Save board columns configuration
// @Description Substitui títulos e cores das colunas do quadro
// @Tags settings
// @Accept json
// @Produce json
// @Param request body models.ColumnsConfigRequest true "Configuração completa"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Router /columns [put]
func (h *HTTPHandler) SaveColumns(w http.ResponseWriter, r *http.Request) {
	var req models.ColumnsConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogError("Erro ao decodificar configuração de colunas: %v", err)
		models.RespondWithJSON(w, http.StatusBadRequest,
			models.NewErrorResponse("Erro ao decodificar requisição: "+err.Error()))
		return
	}

	for _, col := range req.Columns {
		if !col.ID.IsValid() || col.ID == models.StatusNotCalled {
			models.RespondWithJSON(w, http.StatusBadRequest,
				models.NewErrorResponse(fmt.Sprintf("Coluna com status inválido: %s", col.ID)))
			return
		}
	}

	h.mu.Lock()
	h.columns = req.Columns
	saveErr := h.store.SaveColumns(h.columns)
	h.mu.Unlock()

	h.respondAfterSave(w, "Configuração salva", req.Columns, saveErr)
}

// @Summary Available column themes
// @Tags settings
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /themes [get]
func (h *HTTPHandler) GetThemes(w http.ResponseWriter, r *http.Request) {
	models.RespondWithJSON(w, http.StatusOK,
		models.NewSuccessResponse("Temas disponíveis", models.AvailableThemes))
}

// @Summary Productivity dashboard
// @Description Métricas de produtividade por dia, semana e mês, com série de atividade
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /dashboard [get]
func (h *HTTPHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	metrics := services.ComputeMetrics(h.contacts, time.Now())
	h.mu.RUnlock()

	models.RespondWithJSON(w, http.StatusOK,
		models.NewSuccessResponse("Métricas calculadas", metrics))
}

// findContact devolve o índice do contato ou -1. Chamar com o lock adquirido.
func (h *HTTPHandler) findContact(id string) int {
	for i := range h.contacts {
		if h.contacts[i].ID == id {
			return i
		}
	}
	return -1
}

// respondAfterSave responde com sucesso ou, se a gravação falhou, com um
// aviso não bloqueante: o estado em memória permanece e o usuário decide se
// continua.
func (h *HTTPHandler) respondAfterSave(w http.ResponseWriter, message string, data interface{}, saveErr error) {
	if saveErr != nil {
		utils.LogWarning("Falha ao persistir alterações: %v", saveErr)
		models.RespondWithJSON(w, http.StatusOK,
			models.NewWarningResponse("Atenção: Armazenamento cheio ou erro ao salvar.", data))
		return
	}
	models.RespondWithJSON(w, http.StatusOK, models.NewSuccessResponse(message, data))
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
