package errs

// Sentinel errors shared by the usecase layers. Handlers map these onto
// HTTP statuses; infra errors get marked with one of these before crossing
// the usecase boundary.
var (
	// User errors
	ErrUserNotFound       = New("user not found")
	ErrEmailTaken         = New("email already registered")
	ErrInvalidCredentials = New("invalid email or password")

	// Gear errors
	ErrGearNotFound    = New("gear not found")
	ErrGearUnavailable = New("gear is not available")
	ErrNotListingOwner = New("only the gear owner may do this")

	// Booking errors
	ErrBookingNotFound   = New("booking not found")
	ErrBookingConflict   = New("gear is already booked for these dates")
	ErrInsufficientTrust = New("trust level insufficient for this gear")
	ErrUnauthorized      = New("actor is not a party to this booking")

	// Review errors
	ErrReviewAlreadyExists  = New("review already exists for this booking")
	ErrBookingNotReviewable = New("booking is not eligible for review")

	// Message errors
	ErrMessageNotFound     = New("message not found")
	ErrNotMessageRecipient = New("only the recipient may mark a message read")

	// Collaborator errors
	ErrPaymentSetupFailed  = New("payment setup failed")
	ErrOwnerPayoutNotReady = New("gear owner has not completed payment setup")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
