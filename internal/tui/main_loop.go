package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recovery-companion/internal/service"
	"github.com/MKhiriev/go-recovery-companion/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type tab int

const (
	tabHome tab = iota
	tabMedications
	tabDiet
	tabActivities
	tabAssistant
	tabProfile
	tabCount
)

var tabTitles = [tabCount]string{
	tabHome:        "Главная",
	tabMedications: "Лекарства",
	tabDiet:        "Питание",
	tabActivities:  "Активность",
	tabAssistant:   "Ассистент",
	tabProfile:     "Профиль",
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type chatEntry struct {
	question string
	answer   string
}

type mainLoopModel struct {
	ctx      context.Context
	patients service.ClientPatientService
	user     models.User
	notices  <-chan Notice
	done     <-chan struct{}

	active  tab
	loaded  [tabCount]bool
	loading bool
	spinner spinner.Model

	status string
	errMsg string
	notice *Notice

	home        models.Home
	taskIdx     int
	toggling    bool
	medications []models.Medication
	diet        models.DietPlan
	activities  models.Activities
	profile     models.Profile

	question textinput.Model
	chat     []chatEntry
	asking   bool

	logout         bool
	sessionExpired bool
}

func newMainLoopModel(ctx context.Context, patients service.ClientPatientService, user models.User, notices <-chan Notice, done <-chan struct{}) mainLoopModel {
	question := textinput.New()
	question.Placeholder = "Задайте вопрос о восстановлении"
	question.CharLimit = 500
	question.Width = 60

	return mainLoopModel{
		ctx:      ctx,
		patients: patients,
		user:     user,
		notices:  notices,
		done:     done,
		loading:  true,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		question: question,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(tabHome), m.spinner.Tick, waitForNotice(m.notices, m.done))
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case noticeMsg:
		n := Notice(msg)
		m.notice = &n
		return m, waitForNotice(m.notices, m.done)
	case homeLoadedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.home = msg.home
		m.taskIdx = min(m.taskIdx, max(len(m.home.Tasks)-1, 0))
		return m.loadedTab(tabHome), nil
	case medicationsLoadedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.medications = msg.medications
		return m.loadedTab(tabMedications), nil
	case dietLoadedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.diet = msg.diet
		return m.loadedTab(tabDiet), nil
	case activitiesLoadedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.activities = msg.activities
		return m.loadedTab(tabActivities), nil
	case profileLoadedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.profile = msg.profile
		return m.loadedTab(tabProfile), nil
	case taskToggledMsg:
		m.toggling = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		for i := range m.home.Tasks {
			if m.home.Tasks[i].ID == msg.task.ID {
				m.home.Tasks[i].Completed = msg.task.Completed
			}
		}
		m.errMsg = ""
		if msg.task.Completed {
			m.status = "Задача выполнена"
		} else {
			m.status = "Отметка снята"
		}
		return m, nil
	case answerMsg:
		m.asking = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.errMsg = ""
		m.chat = append(m.chat, chatEntry{question: msg.question, answer: msg.answer})
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.active == tabAssistant {
			var cmd tea.Cmd
			m.question, cmd = m.question.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch {
	case keyMsg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.copy):
		m.copyCurrent()
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		return m.switchTab((m.active + 1) % tabCount)
	case key.Matches(keyMsg, keys.backtab):
		return m.switchTab((m.active - 1 + tabCount) % tabCount)
	}

	if m.active == tabAssistant {
		return m.updateAssistant(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.right):
		return m.switchTab((m.active + 1) % tabCount)
	case key.Matches(keyMsg, keys.left):
		return m.switchTab((m.active - 1 + tabCount) % tabCount)
	case key.Matches(keyMsg, keys.reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.errMsg = ""
		m.status = ""
		return m, m.cmdLoad(m.active)
	}

	if m.active == tabHome {
		return m.updateHome(keyMsg)
	}

	return m, nil
}

func (m mainLoopModel) updateHome(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.taskIdx > 0 {
			m.taskIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.taskIdx < len(m.home.Tasks)-1 {
			m.taskIdx++
		}
	case key.Matches(keyMsg, keys.toggle):
		if m.toggling || m.taskIdx >= len(m.home.Tasks) {
			return m, nil
		}
		task := m.home.Tasks[m.taskIdx]
		m.toggling = true
		m.status = ""
		return m, m.cmdToggleTask(task)
	}

	return m, nil
}

func (m mainLoopModel) updateAssistant(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(keyMsg, keys.enter) {
		if m.asking {
			return m, nil
		}
		question := strings.TrimSpace(m.question.Value())
		if question == "" {
			m.errMsg = humanizeError(service.ErrEmptyQuestion)
			return m, nil
		}
		m.asking = true
		m.errMsg = ""
		m.question.Reset()
		return m, m.cmdAsk(question)
	}

	var cmd tea.Cmd
	m.question, cmd = m.question.Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) switchTab(next tab) (tea.Model, tea.Cmd) {
	m.active = next
	m.errMsg = ""
	m.status = ""

	if next == tabAssistant {
		return m, m.question.Focus()
	}
	m.question.Blur()

	if m.loaded[next] {
		return m, nil
	}
	m.loading = true
	return m, m.cmdLoad(next)
}

func (m mainLoopModel) loadedTab(t tab) mainLoopModel {
	m.loading = false
	m.loaded[t] = true
	m.errMsg = ""
	return m
}

// fail shows err as the inline banner. A lost session ends the main loop
// so the user signs in again.
func (m mainLoopModel) fail(err error) (tea.Model, tea.Cmd) {
	m.loading = false
	if errors.Is(err, service.ErrNotAuthenticated) {
		m.sessionExpired = true
		m.logout = true
		return m, tea.Quit
	}

	m.errMsg = humanizeError(err)
	return m, nil
}

func (m *mainLoopModel) copyCurrent() {
	var text string
	switch m.active {
	case tabAssistant:
		if len(m.chat) > 0 {
			text = m.chat[len(m.chat)-1].answer
		}
	case tabProfile:
		text = m.profile.PatientID
	}

	if text == "" {
		m.status = "Нечего копировать"
		return
	}
	if err := writeClipboard(text); err != nil {
		m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
		return
	}
	m.status = "Скопировано"
}

// ── Commands ────────────────────────────────────────────────────────────────

func (m mainLoopModel) cmdLoad(t tab) tea.Cmd {
	ctx := m.ctx
	svc := m.patients

	switch t {
	case tabHome:
		return func() tea.Msg {
			home, err := svc.Home(ctx)
			return homeLoadedMsg{home: home, err: err}
		}
	case tabMedications:
		return func() tea.Msg {
			medications, err := svc.Medications(ctx)
			return medicationsLoadedMsg{medications: medications, err: err}
		}
	case tabDiet:
		return func() tea.Msg {
			diet, err := svc.DietPlan(ctx)
			return dietLoadedMsg{diet: diet, err: err}
		}
	case tabActivities:
		return func() tea.Msg {
			activities, err := svc.Activities(ctx)
			return activitiesLoadedMsg{activities: activities, err: err}
		}
	case tabProfile:
		return func() tea.Msg {
			profile, err := svc.Profile(ctx)
			return profileLoadedMsg{profile: profile, err: err}
		}
	default:
		return nil
	}
}

func (m mainLoopModel) cmdToggleTask(task models.Task) tea.Cmd {
	ctx := m.ctx
	svc := m.patients

	return func() tea.Msg {
		updated, err := svc.SetTaskStatus(ctx, task.ID, !task.Completed)
		if err == nil && updated.ID == 0 {
			updated = task
			updated.Completed = !task.Completed
		}
		return taskToggledMsg{task: updated, err: err}
	}
}

func (m mainLoopModel) cmdAsk(question string) tea.Cmd {
	ctx := m.ctx
	svc := m.patients

	return func() tea.Msg {
		answer, err := svc.AskAI(ctx, question)
		return answerMsg{question: question, answer: answer.Answer, err: err}
	}
}

// ── Views ───────────────────────────────────────────────────────────────────

func (m mainLoopModel) View() string {
	var b strings.Builder

	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("Статус: " + m.status + "\n")
	}
	if m.notice != nil {
		b.WriteString(m.viewNotice())
		b.WriteString("\n")
	}
	if m.errMsg != "" || m.status != "" || m.notice != nil {
		b.WriteString("\n")
	}

	if m.loading && m.active != tabAssistant {
		b.WriteString(m.spinner.View() + " Загрузка...")
	} else {
		b.WriteString(m.viewActive())
	}

	return renderPage(
		"RECOVERY COMPANION │ "+m.user.DisplayName(),
		strings.TrimRight(b.String(), "\n"),
		m.hotKeys(),
	)
}

func (m mainLoopModel) viewTabs() string {
	parts := make([]string, 0, len(tabTitles))
	for i, title := range tabTitles {
		if tab(i) == m.active {
			parts = append(parts, activeTabStyle.Render("["+title+"]"))
			continue
		}
		parts = append(parts, tabStyle.Render(" "+title+" "))
	}
	return strings.Join(parts, " ")
}

func (m mainLoopModel) viewNotice() string {
	if m.notice.Level == NoticeError {
		return errorStyle.Render("Сервер: " + m.notice.Message)
	}
	return warningStyle.Render("Предупреждение: " + m.notice.Message)
}

func (m mainLoopModel) viewActive() string {
	switch m.active {
	case tabHome:
		return m.viewHome()
	case tabMedications:
		return m.viewMedications()
	case tabDiet:
		return m.viewDiet()
	case tabActivities:
		return m.viewActivities()
	case tabAssistant:
		return m.viewAssistant()
	case tabProfile:
		return m.viewProfile()
	default:
		return ""
	}
}

func (m mainLoopModel) viewHome() string {
	if !m.loaded[tabHome] {
		return "Нет данных"
	}

	var b strings.Builder
	completed, percent := m.home.Progress()

	b.WriteString(field("Пациент", m.home.PatientName))
	b.WriteString(field("День восстановления", fmt.Sprintf("%d", m.home.RecoveryDay)))
	b.WriteString(field("Лекарств сегодня", fmt.Sprintf("%d", m.home.MedicationsToday)))
	b.WriteString(field("Следующий приём", m.home.NextAppointment))
	b.WriteString(field("Прогресс", fmt.Sprintf("%d/%d (%d%%)", completed, len(m.home.Tasks), percent)))
	b.WriteString("\nЗадачи на сегодня:\n")

	if len(m.home.Tasks) == 0 {
		b.WriteString("  Задач нет\n")
		return b.String()
	}

	for i, task := range m.home.Tasks {
		cursor := " "
		if i == m.taskIdx {
			cursor = ">"
		}
		check := "[ ]"
		title := task.Title
		if task.Completed {
			check = "[x]"
			title = doneStyle.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, check, title))
	}
	if m.toggling {
		b.WriteString("\nСохранение...\n")
	}

	return b.String()
}

func (m mainLoopModel) viewMedications() string {
	if len(m.medications) == 0 {
		return "Назначений нет"
	}

	var b strings.Builder
	b.WriteString("Время │ Препарат             │ Доза       │ Статус\n")
	b.WriteString("──────┼──────────────────────┼────────────┼──────────\n")
	for _, med := range m.medications {
		b.WriteString(fmt.Sprintf(
			"%-5s │ %-20s │ %-10s │ %s\n",
			med.Time,
			fitText(med.Name, 20),
			fitText(med.Dosage, 10),
			medicationStatusLabel(med.Status),
		))
	}
	return b.String()
}

func (m mainLoopModel) viewDiet() string {
	var b strings.Builder

	b.WriteString(field("Диета", m.diet.DietType))
	b.WriteString(field("Калорийность", m.diet.DailyCalories))
	b.WriteString(field("Комментарий врача", m.diet.DoctorNote))

	b.WriteString("\nПриёмы пищи:\n")
	if len(m.diet.Meals) == 0 {
		b.WriteString("  -\n")
	}
	for _, meal := range m.diet.Meals {
		b.WriteString(fmt.Sprintf("  %-5s %s: %s\n", meal.Time, meal.Name, strings.Join(meal.Foods, ", ")))
	}

	b.WriteString("\nМожно:\n")
	b.WriteString(bulletList(m.diet.AllowedFoods))
	b.WriteString("\nНельзя:\n")
	b.WriteString(bulletList(m.diet.ForbiddenFoods))

	return b.String()
}

func (m mainLoopModel) viewActivities() string {
	var b strings.Builder

	b.WriteString("Разрешено:\n")
	b.WriteString(bulletList(activityLines(m.activities.Allowed)))
	b.WriteString("\nОграничено:\n")
	b.WriteString(bulletList(activityLines(m.activities.Restricted)))

	return b.String()
}

func (m mainLoopModel) viewAssistant() string {
	var b strings.Builder

	if len(m.chat) == 0 {
		b.WriteString(helpStyle.Render("Спросите ассистента о вашем восстановлении."))
		b.WriteString("\n")
	}
	for _, entry := range m.chat {
		b.WriteString("Вы: ")
		b.WriteString(entry.question)
		b.WriteString("\n")
		b.WriteString("Ассистент: ")
		b.WriteString(entry.answer)
		b.WriteString("\n\n")
	}

	if m.asking {
		b.WriteString(m.spinner.View() + " Ассистент думает...\n")
	}
	b.WriteString("\n> ")
	b.WriteString(m.question.View())

	return b.String()
}

func (m mainLoopModel) viewProfile() string {
	var b strings.Builder

	b.WriteString(field("ID пациента", m.profile.PatientID))
	b.WriteString(field("ФИО", m.profile.Name))
	b.WriteString(field("Дата рождения", m.profile.DateOfBirth))
	b.WriteString(field("Группа крови", m.profile.BloodType))
	b.WriteString(field("Email", m.profile.Email))
	b.WriteString(field("Телефон", m.profile.Phone))
	b.WriteString(field("Операция", m.profile.Procedure))
	b.WriteString(field("Дата операции", m.profile.SurgeryDate))
	b.WriteString(field("Больница", m.profile.Hospital))
	b.WriteString(field("Палата", m.profile.Room))
	b.WriteString(field("Хирург", m.profile.PrimarySurgeon))
	b.WriteString(field("Медсестра", m.profile.PrimaryNurse))
	b.WriteString(field("Отделение", m.profile.Department))
	b.WriteString(field("Экстренный контакт", m.profile.EmergencyContact))

	return b.String()
}

func (m mainLoopModel) hotKeys() string {
	switch m.active {
	case tabHome:
		return "↑/↓: задача │ space: отметить │ tab: вкладка │ r: обновить │ ctrl+l: выйти из аккаунта"
	case tabAssistant:
		return "enter: спросить │ ctrl+y: копировать ответ │ tab: вкладка │ ctrl+l: выйти из аккаунта"
	case tabProfile:
		return "ctrl+y: копировать ID │ tab: вкладка │ r: обновить │ ctrl+l: выйти из аккаунта"
	default:
		return "tab: вкладка │ r: обновить │ q: выход │ ctrl+l: выйти из аккаунта"
	}
}

func medicationStatusLabel(s models.MedicationStatus) string {
	switch s {
	case models.MedicationTaken:
		return "принято"
	case models.MedicationUpcoming:
		return "ожидается"
	case models.MedicationMissed:
		return "пропущено"
	default:
		return valueOrDash(string(s))
	}
}

func activityLines(activities []models.Activity) []string {
	lines := make([]string, 0, len(activities))
	for _, a := range activities {
		if a.Description == "" {
			lines = append(lines, a.Name)
			continue
		}
		lines = append(lines, a.Name+": "+a.Description)
	}
	return lines
}
