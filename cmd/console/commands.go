package main

import (
	"context"
	"flag"
	"fmt"

	"creditledger/internal/validation"

	"github.com/sirupsen/logrus"
)

func runProcess(log *logrus.Logger, args []string) int {
	if len(args) != 2 {
		return invalid(fmt.Errorf("process requires <userId> and <amount>"))
	}

	userID, err := validation.UserID(args[0])
	if err != nil {
		return invalid(err)
	}
	amount, err := validation.Amount(args[1])
	if err != nil {
		return invalid(err)
	}

	a, err := newApp(log)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	txn, err := a.transactions.Process(context.Background(), userID, amount)
	if err != nil {
		return fail(err)
	}

	kind := "credit"
	if txn.Amount < 0 {
		kind = "debit"
	}
	fmt.Printf("Transaction processed successfully. ID: %d, Amount: %.2f, Type: %s, User ID: %d\n",
		txn.ID, txn.Amount, kind, txn.UserID)
	return exitOK
}

func runUserReport(log *logrus.Logger, args []string) int {
	if len(args) != 2 {
		return invalid(fmt.Errorf("user-report requires <userId> and <date>"))
	}

	userID, err := validation.UserID(args[0])
	if err != nil {
		return invalid(err)
	}
	date, err := validation.Date(args[1])
	if err != nil {
		return invalid(err)
	}

	a, err := newApp(log)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	rep, err := a.reports.GetUserDailyReport(context.Background(), userID, date)
	if err != nil {
		return fail(err)
	}

	fmt.Printf("Report for User ID: %d\n", rep.UserID)
	fmt.Printf("Date: %s\n", rep.Date)
	fmt.Printf("Total Amount: %.2f\n\n", rep.TotalAmount)
	fmt.Println("Transactions:")
	for _, txn := range rep.Transactions {
		fmt.Printf("  - ID: %d, Amount: %.2f\n", txn.ID, txn.Amount)
	}
	return exitOK
}

func runSystemReport(log *logrus.Logger, args []string) int {
	if len(args) != 1 {
		return invalid(fmt.Errorf("system-report requires <date>"))
	}

	date, err := validation.Date(args[0])
	if err != nil {
		return invalid(err)
	}

	a, err := newApp(log)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	rep, err := a.reports.GetSystemDailyReport(context.Background(), date)
	if err != nil {
		return fail(err)
	}

	fmt.Printf("System Daily Report for %s\n", rep.Date)
	fmt.Printf("Total Amount: %.2f\n", rep.TotalAmount)
	fmt.Printf("Total Transactions: %d\n", rep.TotalTransactionCount)
	return exitOK
}

func runPopulate(log *logrus.Logger, args []string) int {
	fs := flag.NewFlagSet("populate", flag.ContinueOnError)
	count := fs.Int("count", 10, "number of users to generate")
	if err := fs.Parse(args); err != nil {
		return exitInvalid
	}
	if *count <= 0 {
		return invalid(fmt.Errorf("count must be a positive number, got %d", *count))
	}

	a, err := newApp(log)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	users, err := a.users.GenerateRandomUsers(context.Background(), *count)
	if err != nil {
		return fail(err)
	}

	fmt.Printf("Successfully generated %d users\n", len(users))
	return exitOK
}

func runFlushCache(log *logrus.Logger) int {
	a, err := newApp(log)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	if err := a.transactions.InvalidateReportCaches(context.Background()); err != nil {
		return fail(err)
	}

	fmt.Println("Report caches flushed")
	return exitOK
}
