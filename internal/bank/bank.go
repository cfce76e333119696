package bank

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
	"time"

	"student-bank/internal/domain"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Saver persists the whole ledger state. It is called after every
// successful mutation; the three slices map to the three JSON
// documents on disk.
type Saver interface {
	SaveAll(customers []domain.Customer, accounts []domain.Account, transactions []domain.Transaction) error
}

// idAttempts bounds ID generation retries. With a 9-digit space and a
// handful of customers a collision loop this long practically never
// fails.
const idAttempts = 100

// Bank owns the in-memory state. Single-user and synchronous: callers
// invoke operations one at a time from the UI loop.
type Bank struct {
	customers map[string]*domain.Customer
	accounts  map[string]*domain.Account
	history   []domain.Transaction

	saver Saver
	log   *log.Logger
}

// New returns an empty bank. saver may be nil, in which case state is
// never persisted (used by tests).
func New(saver Saver, logger *log.Logger) *Bank {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Bank{
		customers: make(map[string]*domain.Customer),
		accounts:  make(map[string]*domain.Account),
		saver:     saver,
		log:       logger,
	}
}

// Restore replaces the bank's state with loaded data after validating
// referential integrity: every account must reference an existing
// customer and every transaction an existing account. Stale account
// numbers on customers are pruned. A reconciliation mismatch is logged
// but tolerated, since documents written before the transaction log
// existed cannot reconcile.
func (b *Bank) Restore(customers []domain.Customer, accounts []domain.Account, transactions []domain.Transaction) error {
	cm := make(map[string]*domain.Customer, len(customers))
	for i := range customers {
		c := customers[i]
		c.AccountNumbers = append([]string(nil), c.AccountNumbers...)
		cm[c.ID] = &c
	}
	am := make(map[string]*domain.Account, len(accounts))
	for i := range accounts {
		a := accounts[i]
		if _, ok := cm[a.HolderID]; !ok {
			return fmt.Errorf("account %s references unknown customer %s", a.Number, a.HolderID)
		}
		am[a.Number] = &a
	}
	for _, tx := range transactions {
		if _, ok := am[tx.Account]; !ok {
			return fmt.Errorf("transaction references unknown account %s", tx.Account)
		}
	}

	for _, c := range cm {
		kept := c.AccountNumbers[:0]
		for _, n := range c.AccountNumbers {
			if _, ok := am[n]; ok {
				kept = append(kept, n)
			}
		}
		c.AccountNumbers = kept
	}

	b.customers = cm
	b.accounts = am
	b.history = append([]domain.Transaction(nil), transactions...)

	for number := range am {
		if err := b.Reconcile(number); err != nil {
			b.log.Warn("ledger drift on load", "err", err)
		}
	}
	return nil
}

// AddCustomer registers a customer under a freshly generated ID.
func (b *Bank) AddCustomer(name, address string) (domain.Customer, error) {
	id, err := b.newCustomerID()
	if err != nil {
		return domain.Customer{}, err
	}
	c := &domain.Customer{ID: id, Name: name, Address: address}
	b.customers[id] = c
	b.log.Info("customer added", "id", id, "name", name)
	b.persist()
	return *c, nil
}

// RemoveCustomer deletes a customer. Removal is rejected while the
// customer still owns accounts, open or closed, so history never
// dangles.
func (b *Bank) RemoveCustomer(id string) error {
	c, ok := b.customers[id]
	if !ok {
		return ErrCustomerNotFound
	}
	if len(c.AccountNumbers) > 0 {
		return ErrCustomerHasAccounts
	}
	delete(b.customers, id)
	b.log.Info("customer removed", "id", id)
	b.persist()
	return nil
}

// OpenAccount creates an account for an existing customer. A positive
// initial deposit is recorded as a deposit transaction so the account
// reconciles from day one. rate is the interest fraction for savings
// accounts and ignored for current accounts.
func (b *Bank) OpenAccount(customerID string, typ domain.AccountType, initialDeposit, rate decimal.Decimal) (domain.Account, error) {
	c, ok := b.customers[customerID]
	if !ok {
		return domain.Account{}, ErrCustomerNotFound
	}
	switch typ {
	case domain.Savings:
		if rate.IsNegative() {
			return domain.Account{}, ErrInvalidRate
		}
	case domain.Current:
		rate = decimal.Zero
	default:
		return domain.Account{}, ErrUnknownAccountType
	}
	if initialDeposit.IsNegative() {
		return domain.Account{}, ErrInvalidAmount
	}

	number, err := b.newAccountNumber()
	if err != nil {
		return domain.Account{}, err
	}
	a := &domain.Account{
		Number:       number,
		HolderID:     customerID,
		Type:         typ,
		Balance:      decimal.Zero,
		InterestRate: rate,
	}
	b.accounts[number] = a
	c.AccountNumbers = append(c.AccountNumbers, number)
	if initialDeposit.IsPositive() {
		a.Balance = initialDeposit
		b.record(a, domain.TxDeposit, initialDeposit, "")
	}
	b.log.Info("account opened", "number", number, "type", typ, "holder", customerID)
	b.persist()
	return *a, nil
}

// CloseAccount marks a zero-balance account closed. The account and
// its transactions stay on file; only mutations are refused from here
// on.
func (b *Bank) CloseAccount(number string) error {
	a, ok := b.accounts[number]
	if !ok {
		return ErrAccountNotFound
	}
	if a.Closed {
		return ErrAccountClosed
	}
	if !a.Balance.IsZero() {
		return ErrBalanceRemaining
	}
	a.Closed = true
	b.log.Info("account closed", "number", number)
	b.persist()
	return nil
}

// Deposit credits an open account.
func (b *Bank) Deposit(number string, amount decimal.Decimal) (domain.Account, error) {
	if !amount.IsPositive() {
		return domain.Account{}, ErrInvalidAmount
	}
	a, err := b.openAccount(number)
	if err != nil {
		return domain.Account{}, err
	}
	a.Balance = a.Balance.Add(amount)
	b.record(a, domain.TxDeposit, amount, "")
	b.persist()
	return *a, nil
}

// Withdraw debits an open account. The balance never goes negative:
// an oversized withdrawal fails instead of clamping.
func (b *Bank) Withdraw(number string, amount decimal.Decimal) (domain.Account, error) {
	if !amount.IsPositive() {
		return domain.Account{}, ErrInvalidAmount
	}
	a, err := b.openAccount(number)
	if err != nil {
		return domain.Account{}, err
	}
	if amount.GreaterThan(a.Balance) {
		return domain.Account{}, ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	b.record(a, domain.TxWithdraw, amount, "")
	b.persist()
	return *a, nil
}

// Transfer moves amount between two open accounts. All checks run
// before either balance changes, so a failure leaves both accounts and
// the transaction log untouched.
func (b *Bank) Transfer(fromNumber, toNumber string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if fromNumber == toNumber {
		return ErrSameAccount
	}
	src, err := b.openAccount(fromNumber)
	if err != nil {
		return err
	}
	dst, err := b.openAccount(toNumber)
	if err != nil {
		return err
	}
	if amount.GreaterThan(src.Balance) {
		return ErrInsufficientFunds
	}

	src.Balance = src.Balance.Sub(amount)
	dst.Balance = dst.Balance.Add(amount)
	now := time.Now().UTC()
	b.history = append(b.history,
		domain.Transaction{Account: src.Number, Kind: domain.TxTransferOut, Amount: amount, CounterAccount: dst.Number, Timestamp: now, Balance: src.Balance},
		domain.Transaction{Account: dst.Number, Kind: domain.TxTransferIn, Amount: amount, CounterAccount: src.Number, Timestamp: now, Balance: dst.Balance},
	)
	b.log.Info("transfer", "from", fromNumber, "to", toNumber, "amount", amount)
	b.persist()
	return nil
}

// ApplyInterest credits one savings account with balance * rate and
// records an interest transaction.
func (b *Bank) ApplyInterest(number string) (domain.Account, error) {
	a, err := b.openAccount(number)
	if err != nil {
		return domain.Account{}, err
	}
	if a.Type != domain.Savings {
		return domain.Account{}, ErrNotSavings
	}
	b.credit(a)
	b.persist()
	return *a, nil
}

// ApplyAllInterest runs interest over every open savings account and
// returns how many were credited. One transaction is recorded per
// account, keeping each of them reconcilable.
func (b *Bank) ApplyAllInterest() int {
	var credited int
	for _, number := range b.sortedAccountNumbers() {
		a := b.accounts[number]
		if a.Closed || a.Type != domain.Savings {
			continue
		}
		b.credit(a)
		credited++
	}
	if credited > 0 {
		b.persist()
	}
	return credited
}

func (b *Bank) credit(a *domain.Account) {
	interest := a.Balance.Mul(a.InterestRate)
	a.Balance = a.Balance.Add(interest)
	b.record(a, domain.TxInterest, interest, "")
	b.log.Info("interest applied", "number", a.Number, "interest", interest)
}

// Customer returns a copy of one customer.
func (b *Bank) Customer(id string) (domain.Customer, error) {
	c, ok := b.customers[id]
	if !ok {
		return domain.Customer{}, ErrCustomerNotFound
	}
	cp := *c
	cp.AccountNumbers = append([]string(nil), c.AccountNumbers...)
	return cp, nil
}

// Customers returns all customers ordered by ID.
func (b *Bank) Customers() []domain.Customer {
	out := make([]domain.Customer, 0, len(b.customers))
	for _, c := range b.customers {
		cp := *c
		cp.AccountNumbers = append([]string(nil), c.AccountNumbers...)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Account returns a copy of one account.
func (b *Bank) Account(number string) (domain.Account, error) {
	a, ok := b.accounts[number]
	if !ok {
		return domain.Account{}, ErrAccountNotFound
	}
	return *a, nil
}

// Accounts returns all accounts ordered by number.
func (b *Bank) Accounts() []domain.Account {
	out := make([]domain.Account, 0, len(b.accounts))
	for _, number := range b.sortedAccountNumbers() {
		out = append(out, *b.accounts[number])
	}
	return out
}

// CustomerAccounts returns the accounts owned by one customer.
func (b *Bank) CustomerAccounts(id string) ([]domain.Account, error) {
	c, ok := b.customers[id]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	out := make([]domain.Account, 0, len(c.AccountNumbers))
	for _, n := range c.AccountNumbers {
		if a, ok := b.accounts[n]; ok {
			out = append(out, *a)
		}
	}
	return out, nil
}

// History returns the transactions of one account, oldest first.
func (b *Bank) History(number string) ([]domain.Transaction, error) {
	if _, ok := b.accounts[number]; !ok {
		return nil, ErrAccountNotFound
	}
	var out []domain.Transaction
	for _, tx := range b.history {
		if tx.Account == number {
			out = append(out, tx)
		}
	}
	return out, nil
}

// Transactions returns the full log, oldest first.
func (b *Bank) Transactions() []domain.Transaction {
	return append([]domain.Transaction(nil), b.history...)
}

// Reconcile verifies that an account's balance equals the sum of its
// signed transaction deltas.
func (b *Bank) Reconcile(number string) error {
	a, ok := b.accounts[number]
	if !ok {
		return ErrAccountNotFound
	}
	sum := decimal.Zero
	for _, tx := range b.history {
		if tx.Account == number {
			sum = sum.Add(tx.Delta())
		}
	}
	if !sum.Equal(a.Balance) {
		return fmt.Errorf("account %s: balance %s does not match recorded activity %s", number, a.Balance, sum)
	}
	return nil
}

// State exports deep copies of the three collections in a stable
// order, ready for persistence.
func (b *Bank) State() ([]domain.Customer, []domain.Account, []domain.Transaction) {
	return b.Customers(), b.Accounts(), b.Transactions()
}

func (b *Bank) record(a *domain.Account, kind domain.TxKind, amount decimal.Decimal, counter string) {
	b.history = append(b.history, domain.Transaction{
		Account:        a.Number,
		Kind:           kind,
		Amount:         amount,
		CounterAccount: counter,
		Timestamp:      time.Now().UTC(),
		Balance:        a.Balance,
	})
}

// persist writes the whole state after a mutation. On failure the
// in-memory state stays authoritative for the session; the gap is
// logged and the operation still counts as done.
func (b *Bank) persist() {
	if b.saver == nil {
		return
	}
	customers, accounts, transactions := b.State()
	if err := b.saver.SaveAll(customers, accounts, transactions); err != nil {
		b.log.Warn("state not persisted, continuing in memory", "err", err)
	}
}

func (b *Bank) openAccount(number string) (*domain.Account, error) {
	a, ok := b.accounts[number]
	if !ok {
		return nil, ErrAccountNotFound
	}
	if a.Closed {
		return nil, ErrAccountClosed
	}
	return a, nil
}

func (b *Bank) newCustomerID() (string, error) {
	for i := 0; i < idAttempts; i++ {
		id := fmt.Sprintf("%09d", rand.Intn(1_000_000_000))
		if _, taken := b.customers[id]; !taken {
			return id, nil
		}
	}
	return "", ErrIDSpaceExhausted
}

func (b *Bank) newAccountNumber() (string, error) {
	for i := 0; i < idAttempts; i++ {
		number := uuid.NewString()[:8]
		if _, taken := b.accounts[number]; !taken {
			return number, nil
		}
	}
	return "", ErrIDSpaceExhausted
}

func (b *Bank) sortedAccountNumbers() []string {
	numbers := make([]string, 0, len(b.accounts))
	for n := range b.accounts {
		numbers = append(numbers, n)
	}
	sort.Strings(numbers)
	return numbers
}
