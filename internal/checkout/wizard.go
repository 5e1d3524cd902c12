package checkout

import (
	pkgerrors "github.com/shopkartlabs/shopkart-backend/pkg/errors"
	"github.com/shopkartlabs/shopkart-backend/pkg/types"
)

// Step is a stage of the checkout wizard.
type Step int

const (
	StepAddress Step = iota + 1
	StepPayment
	StepConfirm
)

// String implements fmt.Stringer.
func (s Step) String() string {
	switch s {
	case StepAddress:
		return "address"
	case StepPayment:
		return "payment"
	case StepConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// Wizard tracks progress through the address, payment, and confirmation
// steps. It never advances past a failed validation.
type Wizard struct {
	step    Step
	address types.ShippingAddress
}

// NewWizard starts at the address step.
func NewWizard() *Wizard {
	return &Wizard{step: StepAddress}
}

// Step reports the current stage.
func (w *Wizard) Step() Step {
	return w.step
}

// Address returns the submitted shipping address.
func (w *Wizard) Address() types.ShippingAddress {
	return w.address
}

// SubmitAddress validates and stores the address, moving to the payment step.
func (w *Wizard) SubmitAddress(addr types.ShippingAddress) error {
	if w.step != StepAddress {
		return pkgerrors.New(pkgerrors.CodeValidation, "address already submitted")
	}
	if err := ValidateShippingAddress(addr); err != nil {
		return err
	}
	w.address = addr
	w.step = StepPayment
	return nil
}

// Back returns to the address step from payment.
func (w *Wizard) Back() {
	if w.step == StepPayment {
		w.step = StepAddress
	}
}

// ConfirmPayment moves from payment to the confirmation step.
func (w *Wizard) ConfirmPayment() error {
	if w.step != StepPayment {
		return pkgerrors.New(pkgerrors.CodeValidation, "payment step not reached")
	}
	w.step = StepConfirm
	return nil
}
