package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "hotelms/database/repository/booking"
	"hotelms/models"
	"hotelms/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates the request, detects date-range conflicts,
// prices the stay and persists the reservation. The per-service lock is
// held across the conflict check and the insert so concurrent requests
// for the same service cannot both pass the check.
func (e *DefaultBookingEngine) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	usr, err := e.UserRepo.GetByID(input.UserID)
	if err != nil {
		return nil, NewInternal(fmt.Sprintf("failed to look up user: %v", err))
	}
	if usr == nil {
		return nil, NewNotFound("User not found")
	}

	svc, err := e.ServiceRepo.GetByID(input.ServiceID)
	if err != nil {
		return nil, NewInternal(fmt.Sprintf("failed to look up service: %v", err))
	}
	if svc == nil {
		return nil, NewNotFound("Service not found")
	}

	checkIn, checkOut, err := parseStayDates(input.CheckInDate, input.CheckOutDate)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.BookingStatusConfirmed
	}
	if status != models.BookingStatusPending && status != models.BookingStatusConfirmed {
		return nil, NewInvalidInput("Status must be pending or confirmed at creation")
	}

	if input.PaymentMethod != "" &&
		input.PaymentMethod != models.PaymentMethodCard &&
		input.PaymentMethod != models.PaymentMethodPayAtHotel {
		return nil, NewInvalidInput("Payment method must be Card or PayAtHotel")
	}

	lock := e.locks.get(svc.ID)
	lock.Lock()
	defer lock.Unlock()

	overlapping, err := e.BookingRepo.FindOverlapping(svc.ID, checkIn, checkOut, "")
	if err != nil {
		return nil, NewInternal(fmt.Sprintf("failed to check availability: %v", err))
	}
	if len(overlapping) > 0 {
		return nil, NewConflict("Service is already booked for the requested dates")
	}

	ref, err := e.generateUniqueReference()
	if err != nil {
		return nil, NewInternal(err.Error())
	}

	b := &models.Booking{
		ID:               uuid.New().String(),
		BookingReference: ref,
		UserID:           usr.ID,
		ServiceID:        svc.ID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		TotalPrice:       TotalPrice(checkIn, checkOut, svc.Price),
		Status:           status,
		PaymentMethod:    input.PaymentMethod,
	}
	if b.PaymentMethod != "" {
		b.PaymentStatus = models.PaymentStatusPending
	}

	if b.PaymentMethod == models.PaymentMethodCard && e.Payments != nil {
		intentID, err := e.Payments.CreateIntent(ctx, b.TotalPrice, b.ID)
		if err != nil {
			return nil, NewInternal(fmt.Sprintf("failed to create payment intent: %v", err))
		}
		b.PaymentIntentID = intentID
	}

	if err := e.BookingRepo.Create(ctx, b); err != nil {
		return nil, NewInternal(fmt.Sprintf("failed to persist booking: %v", err))
	}

	if e.Reminders != nil {
		if err := e.Reminders.ScheduleCheckInReminder(b, svc.ServiceName); err != nil {
			// Reminders are best-effort; the booking itself stands.
			logger.Warn("Failed to schedule check-in reminder",
				zap.String("bookingId", b.ID), zap.Error(err))
		}
	}

	logger.Info("Booking created",
		zap.String("bookingId", b.ID),
		zap.String("reference", b.BookingReference),
		zap.String("serviceId", svc.ID),
		zap.Float64("totalPrice", b.TotalPrice))
	return b, nil
}

// GetBooking fetches a booking with denormalized user/service summaries.
// Only the owning user or an elevated role may view it; if the owning
// user record has been deleted, only elevated roles may.
func (e *DefaultBookingEngine) GetBooking(id, requesterID, requesterRole string) (*models.BookingDetail, error) {
	b, err := e.BookingRepo.GetByID(id)
	if err != nil {
		return nil, NewInternal(fmt.Sprintf("failed to fetch booking: %v", err))
	}
	if b == nil {
		return nil, NewNotFound("Booking not found")
	}

	elevated := requesterRole == models.RoleAdmin || requesterRole == models.RoleManager
	if !elevated && b.UserID != requesterID {
		return nil, NewForbidden("You are not allowed to view this booking")
	}

	detail := &models.BookingDetail{Booking: *b}

	owner, err := e.UserRepo.GetByID(b.UserID)
	if err != nil {
		return nil, NewInternal(fmt.Sprintf("failed to fetch booking owner: %v", err))
	}
	if owner == nil {
		if !elevated {
			return nil, NewForbidden("You are not allowed to view this booking")
		}
	} else {
		detail.User = &models.UserSummary{ID: owner.ID, Name: owner.Name, Email: owner.Email}
	}

	svc, err := e.ServiceRepo.GetByID(b.ServiceID)
	if err != nil {
		return nil, NewInternal(fmt.Sprintf("failed to fetch booking service: %v", err))
	}
	if svc != nil {
		detail.Service = &models.ServiceSummary{
			ID:          svc.ID,
			ServiceName: svc.ServiceName,
			Category:    svc.Category,
			Price:       svc.Price,
		}
	}

	return detail, nil
}

// ListAllBookings returns every booking joined with user and service
// summaries, newest first. Intended for elevated callers.
func (e *DefaultBookingEngine) ListAllBookings() ([]models.BookingDetail, error) {
	details, err := e.BookingRepo.ListAllDetailed()
	if err != nil {
		return nil, NewInternal(fmt.Sprintf("failed to list bookings: %v", err))
	}
	return details, nil
}

// ListUserBookings returns the caller's own bookings, newest first.
func (e *DefaultBookingEngine) ListUserBookings(userID string) ([]models.Booking, error) {
	bookings, err := e.BookingRepo.ListByUser(userID)
	if err != nil {
		return nil, NewInternal(fmt.Sprintf("failed to list bookings: %v", err))
	}
	return bookings, nil
}

// UpdateBooking applies a status and/or date patch. Date changes are
// re-validated and re-priced against the current service rate; invalid
// dates fail instead of being silently ignored. Any patch that leaves
// the booking occupying an interval it did not occupy before — new
// dates, or a cancelled booking flipped back to active — re-runs the
// conflict check under the per-service lock.
func (e *DefaultBookingEngine) UpdateBooking(id string, patch UpdateBookingInput) (*models.Booking, error) {
	b, err := e.BookingRepo.GetByID(id)
	if err != nil {
		return nil, NewInternal(fmt.Sprintf("failed to fetch booking: %v", err))
	}
	if b == nil {
		return nil, NewNotFound("Booking not found")
	}
	wasActive := b.Active()

	if patch.Status != "" {
		switch patch.Status {
		case models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCancelled:
			b.Status = patch.Status
		default:
			return nil, NewInvalidInput("Status must be pending, confirmed or cancelled")
		}
	}

	datesChanged := patch.CheckInDate != "" || patch.CheckOutDate != ""
	checkIn := b.CheckIn
	checkOut := b.CheckOut
	if datesChanged {
		if patch.CheckInDate != "" {
			if checkIn, err = parseDate(patch.CheckInDate); err != nil {
				return nil, NewInvalidInput("Invalid check-in date")
			}
		}
		if patch.CheckOutDate != "" {
			if checkOut, err = parseDate(patch.CheckOutDate); err != nil {
				return nil, NewInvalidInput("Invalid check-out date")
			}
		}
		if !checkOut.After(checkIn) {
			return nil, NewInvalidInput("Check-out date must be after check-in date")
		}
	}

	if b.Active() && (datesChanged || !wasActive) {
		lock := e.locks.get(b.ServiceID)
		lock.Lock()
		defer lock.Unlock()

		overlapping, err := e.BookingRepo.FindOverlapping(b.ServiceID, checkIn, checkOut, b.ID)
		if err != nil {
			return nil, NewInternal(fmt.Sprintf("failed to check availability: %v", err))
		}
		if len(overlapping) > 0 {
			return nil, NewConflict("Service is already booked for the requested dates")
		}
	}

	if datesChanged {
		svc, err := e.ServiceRepo.GetByID(b.ServiceID)
		if err != nil {
			return nil, NewInternal(fmt.Sprintf("failed to fetch service: %v", err))
		}
		if svc == nil {
			return nil, NewNotFound("Service not found")
		}
		b.CheckIn = checkIn
		b.CheckOut = checkOut
		b.TotalPrice = TotalPrice(checkIn, checkOut, svc.Price)
	}

	if err := e.BookingRepo.Update(b); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NewNotFound("Booking not found")
		}
		return nil, NewInternal(fmt.Sprintf("failed to update booking: %v", err))
	}
	return b, nil
}

// DeleteBooking removes the booking, implicitly freeing its interval.
// A repeated delete of the same id fails NotFound.
func (e *DefaultBookingEngine) DeleteBooking(id string) error {
	if err := e.BookingRepo.Delete(id); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return NewNotFound("Booking not found")
		}
		return NewInternal(fmt.Sprintf("failed to delete booking: %v", err))
	}
	return nil
}

// CheckAvailability reports whether the service is free for the range.
func (e *DefaultBookingEngine) CheckAvailability(serviceID, checkInRaw, checkOutRaw string) (bool, error) {
	svc, err := e.ServiceRepo.GetByID(serviceID)
	if err != nil {
		return false, NewInternal(fmt.Sprintf("failed to look up service: %v", err))
	}
	if svc == nil {
		return false, NewNotFound("Service not found")
	}

	checkIn, checkOut, err := parseStayDates(checkInRaw, checkOutRaw)
	if err != nil {
		return false, err
	}

	overlapping, err := e.BookingRepo.FindOverlapping(serviceID, checkIn, checkOut, "")
	if err != nil {
		return false, NewInternal(fmt.Sprintf("failed to check availability: %v", err))
	}
	return len(overlapping) == 0, nil
}

// parseStayDates parses and orders the raw check-in/check-out values.
func parseStayDates(checkInRaw, checkOutRaw string) (time.Time, time.Time, error) {
	if checkInRaw == "" || checkOutRaw == "" {
		return time.Time{}, time.Time{}, NewInvalidInput("Check-in and check-out dates are required")
	}
	checkIn, err := parseDate(checkInRaw)
	if err != nil {
		return time.Time{}, time.Time{}, NewInvalidInput("Invalid check-in date")
	}
	checkOut, err := parseDate(checkOutRaw)
	if err != nil {
		return time.Time{}, time.Time{}, NewInvalidInput("Invalid check-out date")
	}
	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, NewInvalidInput("Check-out date must be after check-in date")
	}
	return checkIn, checkOut, nil
}
