package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/sitewatch-dev/sitewatch/db"
	"github.com/sitewatch-dev/sitewatch/internal/errstore"
	"github.com/sitewatch-dev/sitewatch/internal/models"
	"github.com/sitewatch-dev/sitewatch/internal/monitors"
	"github.com/sitewatch-dev/sitewatch/internal/services"
	"github.com/sitewatch-dev/sitewatch/internal/settings"
	"github.com/sitewatch-dev/sitewatch/internal/types"
)

type Scheduler struct {
	monitors  map[uint]*MonitorJob // monitor PK -> job
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
	broadcast func(siteIdentifier string)
}

type MonitorJob struct {
	monitor models.Monitor
	ticker  *time.Ticker
	cancel  context.CancelFunc
}

// NewScheduler initializes a new Scheduler instance
func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		monitors: make(map[uint]*MonitorJob),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// SetRefreshBroadcaster installs the callback invoked after each
// completed check, carrying the owning site's identifier. Callers wrap
// it in a debounce so bursts collapse into one notification.
func (s *Scheduler) SetRefreshBroadcaster(fn func(siteIdentifier string)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.broadcast = fn
}

// Start loads every actively monitored monitor and begins scheduling.
// Paused monitors and monitors of paused sites stay idle.
func (s *Scheduler) Start() error {
	log.Println("Starting scheduler...")

	var monitorsList []models.Monitor
	err := db.DB.Joins("JOIN sites ON sites.id = monitors.site_id").
		Where("monitors.monitoring = ? AND sites.monitoring = ?", true, true).
		Find(&monitorsList).Error

	if err != nil {
		return err
	}

	for _, monitor := range monitorsList {
		s.AddMonitor(monitor)
	}

	log.Printf("Scheduler started with %d monitors", len(monitorsList))
	return nil
}

// Stop gracefully shuts down all monitor jobs
func (s *Scheduler) Stop() {
	log.Println("Stopping scheduler...")
	s.cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.monitors {
		job.ticker.Stop()
		job.cancel()
	}

	s.monitors = make(map[uint]*MonitorJob)
	log.Println("Scheduler stopped")
}

// AddMonitor starts scheduling checks for a monitor, replacing any
// existing job for the same monitor.
func (s *Scheduler) AddMonitor(monitor models.Monitor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existingJob, exists := s.monitors[monitor.ID]; exists {
		existingJob.ticker.Stop()
		existingJob.cancel()
	}

	interval := monitor.CheckInterval

	if interval <= 0 {
		interval = 60
	}

	jobCtx, jobCancel := context.WithCancel(s.ctx)
	ticker := time.NewTicker(time.Duration(interval) * time.Second)

	job := &MonitorJob{
		monitor: monitor,
		ticker:  ticker,
		cancel:  jobCancel,
	}

	s.monitors[monitor.ID] = job

	// Immediate first check, then the regular ticker loop.
	go func() {
		monitorCopy := monitor
		s.executeCheck(monitorCopy)
		s.runMonitor(jobCtx, job)
	}()

	log.Printf("Added monitor %s (%s) with immediate check", monitor.UUID, monitor.Type)
}

// RemoveMonitor stops scheduling checks for a monitor.
func (s *Scheduler) RemoveMonitor(monitorID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if job, exists := s.monitors[monitorID]; exists {
		job.ticker.Stop()
		job.cancel()
		delete(s.monitors, monitorID)
		log.Printf("Removed monitor %d", monitorID)
	}
}

// UpdateMonitor updates an existing monitor (stops old, starts new)
func (s *Scheduler) UpdateMonitor(monitor models.Monitor) {
	s.AddMonitor(monitor) // AddMonitor handles stopping existing job
}

// CheckNow runs an immediate out-of-band check for a monitor without
// disturbing its schedule.
func (s *Scheduler) CheckNow(monitor models.Monitor) {
	s.executeCheck(monitor)
}

// runMonitor executes the actual monitoring logic
func (s *Scheduler) runMonitor(ctx context.Context, job *MonitorJob) {
	defer job.ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-job.ticker.C:
			s.mu.RLock()
			monitorCopy := job.monitor
			s.mu.RUnlock()

			s.executeCheck(monitorCopy)
		}
	}
}

// executeCheck runs one check cycle: probe with immediate retries, then
// persist the result, history, and any incident transition.
func (s *Scheduler) executeCheck(monitor models.Monitor) {
	timeout := monitor.Timeout

	if timeout <= 0 {
		timeout = 10
	}

	var result monitors.Result
	var responseTime time.Duration

	attempts := totalAttempts(monitor.RetryAttempts)

	for attempt := 0; attempt < attempts; attempt++ {
		start := time.Now()

		ctx, cancel := context.WithTimeout(s.ctx, time.Duration(timeout)*time.Second)
		result = s.runProbe(ctx, monitor)
		cancel()

		responseTime = time.Since(start)

		if result.Success {
			break
		}
	}

	s.recordOutcome(monitor, result, responseTime)
}

// runProbe dispatches to the probe for the monitor's type. The type set
// is closed; an unknown type is a data bug, not a check failure worth
// retrying.
func (s *Scheduler) runProbe(ctx context.Context, monitor models.Monitor) monitors.Result {
	switch monitor.Type {
	case types.MonitorTypeHTTP:
		var cfg types.HTTPConfig
		if err := json.Unmarshal(monitor.Config, &cfg); err != nil {
			return monitors.Result{Err: fmt.Errorf("invalid HTTP config: %w", err)}
		}
		return monitors.CheckHTTP(ctx, &cfg)
	case types.MonitorTypePing:
		var cfg types.PingConfig
		if err := json.Unmarshal(monitor.Config, &cfg); err != nil {
			return monitors.Result{Err: fmt.Errorf("invalid ping config: %w", err)}
		}
		return monitors.CheckPing(ctx, &cfg)
	case types.MonitorTypePort:
		var cfg types.PortConfig
		if err := json.Unmarshal(monitor.Config, &cfg); err != nil {
			return monitors.Result{Err: fmt.Errorf("invalid port config: %w", err)}
		}
		return monitors.CheckPort(ctx, &cfg)
	case types.MonitorTypeDNS:
		var cfg types.DNSConfig
		if err := json.Unmarshal(monitor.Config, &cfg); err != nil {
			return monitors.Result{Err: fmt.Errorf("invalid DNS config: %w", err)}
		}
		return monitors.CheckDNS(ctx, &cfg)
	default:
		return monitors.Result{Err: fmt.Errorf("unsupported monitor type: %s", monitor.Type)}
	}
}

// recordOutcome persists the check, advances the monitor's status, and
// handles incident open/resolve edges.
func (s *Scheduler) recordOutcome(monitor models.Monitor, result monitors.Result, responseTime time.Duration) {
	var current models.Monitor

	if err := db.DB.First(&current, monitor.ID).Error; err != nil {
		log.Printf("Monitor %d vanished during check: %v", monitor.ID, err)
		s.RemoveMonitor(monitor.ID)
		return
	}

	nextStatus := ConcludeStatus(result.Success)
	edge := TransitionEdge(current.Status, nextStatus)

	details := result.Details

	if result.Err != nil {
		if details != "" {
			details = fmt.Sprintf("%s: %v", details, result.Err)
		} else {
			details = result.Err.Error()
		}
	}

	s.storeCheckResult(current.ID, nextStatus, details, responseTime)

	if !ShouldAdvanceStatus(current.Monitoring, current.Status) {
		log.Printf("Monitor %s checked while stopped, status stays %s", current.UUID, current.Status)
		s.notifySite(current.SiteID)
		return
	}

	updates := map[string]interface{}{
		"status":        nextStatus,
		"response_time": int(responseTime.Milliseconds()),
	}

	if err := db.DB.Model(&current).Updates(updates).Error; err != nil {
		errstore.Default.SetStoreError("scheduler", err.Error())
		log.Printf("Failed to update monitor %d status: %v", current.ID, err)
	}

	switch edge {
	case EdgeWentDown:
		s.openIncident(current, details)
	case EdgeRecovered:
		s.resolveIncident(current)
	}

	if result.Err != nil {
		log.Printf("Monitor %s failed: %v", current.UUID, result.Err)
	} else {
		log.Printf("Monitor %s succeeded in %v", current.UUID, responseTime)
	}

	s.notifySite(current.SiteID)
}

// storeCheckResult saves the check result and prunes history beyond the
// configured limit.
func (s *Scheduler) storeCheckResult(monitorID uint, status, details string, responseTime time.Duration) {
	check := models.MonitorCheck{
		MonitorID:    monitorID,
		Status:       status,
		ResponseTime: int(responseTime.Milliseconds()),
		Details:      details,
		CheckedAt:    time.Now(),
	}

	if err := db.DB.Create(&check).Error; err != nil {
		errstore.Default.SetStoreError("scheduler", err.Error())
		log.Printf("Failed to store check result for monitor %d: %v", monitorID, err)
		return
	}

	s.pruneHistory(monitorID)
}

func (s *Scheduler) pruneHistory(monitorID uint) {
	limit := settings.HistoryLimit()

	if limit <= 0 {
		return
	}

	keep := db.DB.Model(&models.MonitorCheck{}).
		Select("id").
		Where("monitor_id = ?", monitorID).
		Order("checked_at DESC").
		Limit(limit)

	err := db.DB.Unscoped().
		Where("monitor_id = ? AND id NOT IN (?)", monitorID, keep).
		Delete(&models.MonitorCheck{}).Error

	if err != nil {
		log.Printf("Failed to prune history for monitor %d: %v", monitorID, err)
	}
}

func (s *Scheduler) openIncident(monitor models.Monitor, details string) {
	// One open incident per monitor.
	var existing models.Incident

	err := db.DB.Where("monitor_id = ? AND status = ?", monitor.ID, "open").First(&existing).Error

	if err == nil {
		return
	}

	now := time.Now()

	incident := models.Incident{
		MonitorID:   monitor.ID,
		Status:      "open",
		Severity:    "critical",
		Title:       fmt.Sprintf("Monitor %s is down", monitor.UUID),
		Description: details,
		StartedAt:   &now,
	}

	if err := db.DB.Create(&incident).Error; err != nil {
		errstore.Default.SetStoreError("scheduler", err.Error())
		log.Printf("Failed to create incident for monitor %d: %v", monitor.ID, err)
		return
	}

	incident.Monitor = monitor

	var site models.Site

	if err := db.DB.First(&site, monitor.SiteID).Error; err != nil {
		return
	}

	if err := services.SendIncidentCreatedNotification(site, incident); err != nil {
		errstore.Default.SetStoreError("notifications", err.Error())
		log.Printf("Failed to send incident notification: %v", err)
	}
}

func (s *Scheduler) resolveIncident(monitor models.Monitor) {
	var incident models.Incident

	err := db.DB.Where("monitor_id = ? AND status = ?", monitor.ID, "open").First(&incident).Error

	if err != nil {
		return
	}

	now := time.Now()
	incident.Status = "resolved"
	incident.ResolvedAt = &now

	if err := db.DB.Save(&incident).Error; err != nil {
		errstore.Default.SetStoreError("scheduler", err.Error())
		log.Printf("Failed to resolve incident %d: %v", incident.ID, err)
		return
	}

	incident.Monitor = monitor

	var site models.Site

	if err := db.DB.First(&site, monitor.SiteID).Error; err != nil {
		return
	}

	if err := services.SendIncidentResolvedNotification(site, incident); err != nil {
		errstore.Default.SetStoreError("notifications", err.Error())
		log.Printf("Failed to send resolution notification: %v", err)
	}
}

func (s *Scheduler) notifySite(siteID uint) {
	s.mu.RLock()
	broadcast := s.broadcast
	s.mu.RUnlock()

	if broadcast == nil {
		return
	}

	var site models.Site

	if err := db.DB.First(&site, siteID).Error; err != nil {
		return
	}

	broadcast(site.Identifier)
}

// GetStatus returns current scheduler status
func (s *Scheduler) GetStatus() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"active_monitors": len(s.monitors),
		"running":         s.ctx.Err() == nil,
	}
}

// Global scheduler instance
var globalScheduler *Scheduler

// Initialize creates and starts the global scheduler
func Initialize() error {
	globalScheduler = NewScheduler()
	return globalScheduler.Start()
}

// Shutdown stops the global scheduler
func Shutdown() {
	if globalScheduler != nil {
		globalScheduler.Stop()
	}
}

// SetRefreshBroadcaster installs the refresh callback on the global scheduler.
func SetRefreshBroadcaster(fn func(siteIdentifier string)) {
	if globalScheduler != nil {
		globalScheduler.SetRefreshBroadcaster(fn)
	}
}

// AddMonitor adds a monitor to the global scheduler
func AddMonitor(monitor models.Monitor) {
	if globalScheduler != nil {
		globalScheduler.AddMonitor(monitor)
	}
}

// RemoveMonitor removes a monitor from the global scheduler
func RemoveMonitor(monitorID uint) {
	if globalScheduler != nil {
		globalScheduler.RemoveMonitor(monitorID)
	}
}

// UpdateMonitor updates a monitor in the global scheduler
func UpdateMonitor(monitor models.Monitor) {
	if globalScheduler != nil {
		globalScheduler.UpdateMonitor(monitor)
	}
}

// CheckNow runs an immediate check on the global scheduler.
func CheckNow(monitor models.Monitor) {
	if globalScheduler != nil {
		globalScheduler.CheckNow(monitor)
	}
}

// GetStatus reports the global scheduler's status.
func GetStatus() map[string]interface{} {
	if globalScheduler == nil {
		return map[string]interface{}{"active_monitors": 0, "running": false}
	}

	return globalScheduler.GetStatus()
}
