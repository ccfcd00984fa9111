package lingo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lingobase/lingo"
)

func TestContextStack(t *testing.T) {
	svc := newTestService(t, nil)

	testCases := []struct {
		name       string
		run        func(t *testing.T, lc *lingo.Context)
		wantActive int
		wantDepth  int
	}{
		{
			name:       "initial state",
			run:        func(*testing.T, *lingo.Context) {},
			wantActive: langEnglish,
			wantDepth:  1,
		},
		{
			name: "push activates the new language",
			run: func(t *testing.T, lc *lingo.Context) {
				require.NoError(t, lc.Push(langSwahili))
			},
			wantActive: langSwahili,
			wantDepth:  2,
		},
		{
			name: "push then pop restores the previous language",
			run: func(t *testing.T, lc *lingo.Context) {
				require.NoError(t, lc.Push(langSwahili))
				require.NoError(t, lc.Pop())
			},
			wantActive: langEnglish,
			wantDepth:  1,
		},
		{
			name: "set replaces the top without growing the stack",
			run: func(t *testing.T, lc *lingo.Context) {
				require.NoError(t, lc.Push(langSwahili))
				require.NoError(t, lc.Set(langArabic))
			},
			wantActive: langArabic,
			wantDepth:  2,
		},
		{
			name: "set on the base language keeps depth one",
			run: func(t *testing.T, lc *lingo.Context) {
				require.NoError(t, lc.Set(langSwahili))
			},
			wantActive: langSwahili,
			wantDepth:  1,
		},
		{
			name: "interleaved pushes and pops track the top",
			run: func(t *testing.T, lc *lingo.Context) {
				require.NoError(t, lc.Push(langSwahili))
				require.NoError(t, lc.Push(langArabic))
				require.NoError(t, lc.Pop())
				require.NoError(t, lc.Push(langArabic))
				require.NoError(t, lc.Pop())
				require.NoError(t, lc.Pop())
				require.NoError(t, lc.Push(langArabic))
			},
			wantActive: langArabic,
			wantDepth:  2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lc, err := svc.NewContext(langEnglish)
			require.NoError(t, err)

			tc.run(t, lc)

			require.Equal(t, tc.wantActive, lc.ActiveLanguageID())
			require.Equal(t, tc.wantDepth, lc.Depth())
		})
	}
}

func TestContextStackErrors(t *testing.T) {
	svc := newTestService(t, nil)

	t.Run("pop below the base language fails and keeps the stack", func(t *testing.T) {
		lc, err := svc.NewContext(langEnglish)
		require.NoError(t, err)

		require.ErrorIs(t, lc.Pop(), lingo.ErrLanguageStackUnderflow)
		require.Equal(t, langEnglish, lc.ActiveLanguageID())
		require.Equal(t, 1, lc.Depth())
	})

	t.Run("push of an unknown language fails", func(t *testing.T) {
		lc, err := svc.NewContext(langEnglish)
		require.NoError(t, err)

		require.ErrorIs(t, lc.Push(99), lingo.ErrLanguageNotFound)
		require.Equal(t, langEnglish, lc.ActiveLanguageID())
		require.Equal(t, 1, lc.Depth())
	})

	t.Run("set of an unknown language fails", func(t *testing.T) {
		lc, err := svc.NewContext(langEnglish)
		require.NoError(t, err)

		require.ErrorIs(t, lc.Set(99), lingo.ErrLanguageNotFound)
		require.Equal(t, langEnglish, lc.ActiveLanguageID())
	})

	t.Run("context for an unknown language fails", func(t *testing.T) {
		_, err := svc.NewContext(99)
		require.ErrorIs(t, err, lingo.ErrLanguageNotFound)
	})
}

func TestContextMetadata(t *testing.T) {
	svc := newTestService(t, nil)

	lc, err := svc.NewContext(langArabic)
	require.NoError(t, err)

	require.Equal(t, lingo.DirRTL, lc.Dir())
	require.Equal(t, "ar", lc.Lang())
	require.Equal(t, "ar_EG", lc.Locale())
	require.Equal(t, "ara", lc.InternalCode())

	require.NoError(t, lc.Set(langEnglish))
	require.Equal(t, lingo.DirLTR, lc.Dir())
	require.Equal(t, "en", lc.Lang())

	require.Equal(t, map[string]int{
		"eng": langEnglish,
		"swa": langSwahili,
		"ara": langArabic,
	}, lc.InternalLanguageMap())
}

func TestContextPropagation(t *testing.T) {
	svc := newTestService(t, nil)

	lc, err := svc.NewContext(langSwahili)
	require.NoError(t, err)

	ctx := lingo.ToContext(context.Background(), lc)
	require.Same(t, lc, lingo.FromContext(ctx))

	require.Nil(t, lingo.FromContext(context.Background()))
}
